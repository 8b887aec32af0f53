package live

import (
	"fmt"
	"math"
	"testing"
)

func TestRosterUpdateAndRemove(t *testing.T) {
	r := NewRoster()

	r.Update("user_a", &PresencePayload{DisplayName: "Ana", Cursor: &CursorPos{X: 10, Y: 20}})
	r.Update("user_b", &PresencePayload{DisplayName: "Ben"})
	r.Remove("user_b")

	if r.Count() != 1 {
		t.Fatalf("roster count = %d, want 1", r.Count())
	}
	all := r.Snapshot()
	if all["user_a"].Cursor == nil || all["user_a"].Cursor.X != 10 {
		t.Errorf("user_a cursor = %v, want x=10", all["user_a"].Cursor)
	}

	msg := r.StateMessage()
	if msg == nil {
		t.Fatal("state message is nil")
	}
	if msg.Type != TypePresenceState {
		t.Errorf("type = %q, want %q", msg.Type, TypePresenceState)
	}
}

func TestRosterDropsNonFiniteCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor CursorPos
	}{
		{"nan x", CursorPos{X: math.NaN(), Y: 5}},
		{"nan y", CursorPos{X: 5, Y: math.NaN()}},
		{"inf x", CursorPos{X: math.Inf(1), Y: 5}},
		{"neg inf y", CursorPos{X: 5, Y: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRoster()
			c := tt.cursor
			stored := r.Update("user_a", &PresencePayload{Cursor: &c})
			if stored.Cursor != nil {
				t.Errorf("stored cursor = %v, want dropped", stored.Cursor)
			}
			if got := r.Snapshot()["user_a"]; got.Cursor != nil {
				t.Errorf("roster cursor = %v, want dropped", got.Cursor)
			}
		})
	}
}

func TestRosterTruncatesOversizedSelection(t *testing.T) {
	sel := make([]string, maxSelectionNodes+20)
	for i := range sel {
		sel[i] = fmt.Sprintf("node-%d", i)
	}

	r := NewRoster()
	stored := r.Update("user_a", &PresencePayload{Selection: sel})

	if len(stored.Selection) != maxSelectionNodes {
		t.Errorf("selection length = %d, want %d", len(stored.Selection), maxSelectionNodes)
	}
	if stored.Selection[0] != "node-0" {
		t.Errorf("selection head = %q, want the original order kept", stored.Selection[0])
	}
}

func TestRosterUpdateDoesNotAliasCaller(t *testing.T) {
	r := NewRoster()
	p := &PresencePayload{DisplayName: "Ana"}
	r.Update("user_a", p)

	p.DisplayName = "changed"
	if got := r.Snapshot()["user_a"].DisplayName; got != "Ana" {
		t.Errorf("stored display name = %q, want copy taken at update", got)
	}
}
