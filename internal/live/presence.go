package live

import (
	"encoding/json"
	"log/slog"
	"math"
	"sync"
)

// maxSelectionNodes caps how many node names a single presence update may
// claim as selected. Real boards top out far below this; anything larger
// is a misbehaving client.
const maxSelectionNodes = 64

// Roster tracks who is viewing a board right now: one entry per user with
// their cursor position and node selection as last reported.
type Roster struct {
	mu      sync.RWMutex
	entries map[string]*PresencePayload // userID -> last presence
}

func NewRoster() *Roster {
	return &Roster{entries: make(map[string]*PresencePayload)}
}

// Update stores a sanitized copy of p for userID and returns the stored
// value. A cursor with non-finite coordinates is dropped and oversized
// selections are truncated, so one bad client cannot poison what every
// other viewer of the board sees.
func (r *Roster) Update(userID string, p *PresencePayload) *PresencePayload {
	clean := *p
	if c := clean.Cursor; c != nil && (!isFinite(c.X) || !isFinite(c.Y)) {
		slog.Debug("dropping non-finite cursor", "user", userID)
		clean.Cursor = nil
	}
	if len(clean.Selection) > maxSelectionNodes {
		clean.Selection = clean.Selection[:maxSelectionNodes]
	}

	r.mu.Lock()
	r.entries[userID] = &clean
	r.mu.Unlock()
	return &clean
}

func (r *Roster) Remove(userID string) {
	r.mu.Lock()
	delete(r.entries, userID)
	r.mu.Unlock()
}

// Count reports how many users currently have an entry.
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns a copy of every entry keyed by user.
func (r *Roster) Snapshot() map[string]*PresencePayload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*PresencePayload, len(r.entries))
	for k, v := range r.entries {
		result[k] = v
	}
	return result
}

// StateMessage packages the whole roster for a client that just joined.
func (r *Roster) StateMessage() *Message {
	payload, err := json.Marshal(PresenceStatePayload{Presences: r.Snapshot()})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{
		Type:    TypePresenceState,
		Payload: payload,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
