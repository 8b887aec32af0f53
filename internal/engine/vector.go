package engine

import "math"

// Xyz is a point or offset in scene space. The Z component is used only for
// stacking and zoom thresholds, never for projection. Values are immutable:
// every operation returns a new Xyz.
type Xyz struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Xyz) Add(o Xyz) Xyz {
	return Xyz{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Xyz) Sub(o Xyz) Xyz {
	return Xyz{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Xyz) Mul(o Xyz) Xyz {
	return Xyz{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Scale returns v with X and Y multiplied by sx and sy. Z passes through.
func (v Xyz) Scale(sx, sy float64) Xyz {
	return Xyz{v.X * sx, v.Y * sy, v.Z}
}

// Rotate rotates v about the origin in the x/y plane by the given angle in
// degrees. Z passes through unchanged.
func (v Xyz) Rotate(degrees float64) Xyz {
	if degrees == 0 {
		return v
	}
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return Xyz{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Midpoint returns the point halfway between v and o.
func (v Xyz) Midpoint(o Xyz) Xyz {
	return Xyz{(v.X + o.X) / 2, (v.Y + o.Y) / 2, (v.Z + o.Z) / 2}
}

// DistanceTo returns the Euclidean distance between v and o in the x/y plane.
func (v Xyz) DistanceTo(o Xyz) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Hypot(dx, dy)
}
