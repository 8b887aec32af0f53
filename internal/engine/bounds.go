package engine

// Bounds is an axis-aligned bounding box in scene space.
type Bounds struct {
	Min Xyz `json:"min"`
	Max Xyz `json:"max"`
}

// BoundsAround returns the bounds spanning all of the given points.
// Returns an empty Bounds if no points are given.
func BoundsAround(points ...Xyz) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend grows the bounds to include p.
func (b Bounds) Extend(p Xyz) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return b.Extend(o.Min).Extend(o.Max)
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Xyz) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Xyz {
	return b.Min.Midpoint(b.Max)
}
