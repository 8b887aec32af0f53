package live

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// StateFeed holds the last-known live value for each named node on a
// board. Updates overwrite per node, so a newly joined viewer can be
// brought current with a single snapshot.
type StateFeed struct {
	mu     sync.RWMutex
	states map[string]json.RawMessage // node name -> latest value
}

func NewStateFeed() *StateFeed {
	return &StateFeed{
		states: make(map[string]json.RawMessage),
	}
}

func (sf *StateFeed) Apply(update StateUpdatePayload) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	for name, value := range update.States {
		if value == nil {
			delete(sf.states, name)
			continue
		}
		sf.states[name] = value
	}
}

func (sf *StateFeed) GetAll() map[string]json.RawMessage {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	result := make(map[string]json.RawMessage, len(sf.states))
	for k, v := range sf.states {
		result[k] = v
	}
	return result
}

// Clear drops all stored node states, used when the board document is
// replaced and old node names may no longer exist.
func (sf *StateFeed) Clear() {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.states = make(map[string]json.RawMessage)
}

func (sf *StateFeed) SnapshotMessage() *Message {
	all := sf.GetAll()
	payload, err := json.Marshal(StateSnapshotPayload{States: all})
	if err != nil {
		slog.Error("marshal state snapshot", "error", err)
		return nil
	}
	return &Message{
		Type:    TypeStateSnapshot,
		Payload: payload,
	}
}
