package live

import "encoding/json"

type Message struct {
	Type     string          `json:"type"`
	BoardID  string          `json:"boardId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	Selection   []string   `json:"selection,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

// StateUpdatePayload carries live values for named nodes on the board,
// e.g. a pump status or a tank level pushed by a telemetry gateway. Values
// are opaque to the server; viewers apply them to the matching nodes.
type StateUpdatePayload struct {
	States map[string]json.RawMessage `json:"states"`
}

// StateSnapshotPayload is the full set of last-known node states, sent to
// a client when it joins a board.
type StateSnapshotPayload struct {
	States map[string]json.RawMessage `json:"states"`
}

// DocSavedPayload announces that a new document snapshot was stored, so
// other viewers can reload it.
type DocSavedPayload struct {
	Version int `json:"version"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Live node state
	TypeStateUpdate   = "state.update"
	TypeStateSnapshot = "state.snapshot"

	// Document lifecycle
	TypeDocSaved  = "doc.saved"
	TypeDocReload = "doc.reload"
)
