package live

import (
	"encoding/json"
	"testing"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestStateFeedApplyOverwritesPerNode(t *testing.T) {
	feed := NewStateFeed()

	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"pump-1": raw(`{"running":true}`),
		"tank-a": raw(`{"level":0.4}`),
	}})
	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"pump-1": raw(`{"running":false}`),
	}})

	all := feed.GetAll()
	if len(all) != 2 {
		t.Fatalf("state count = %d, want 2", len(all))
	}
	if string(all["pump-1"]) != `{"running":false}` {
		t.Errorf("pump-1 = %s, want overwritten value", all["pump-1"])
	}
	if string(all["tank-a"]) != `{"level":0.4}` {
		t.Errorf("tank-a = %s, want untouched value", all["tank-a"])
	}
}

func TestStateFeedNilValueDeletes(t *testing.T) {
	feed := NewStateFeed()

	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"pump-1": raw(`{"running":true}`),
	}})
	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"pump-1": nil,
	}})

	if got := feed.GetAll(); len(got) != 0 {
		t.Errorf("state count after delete = %d, want 0", len(got))
	}
}

func TestStateFeedClear(t *testing.T) {
	feed := NewStateFeed()
	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"pump-1": raw(`1`),
		"pump-2": raw(`2`),
	}})

	feed.Clear()

	if got := feed.GetAll(); len(got) != 0 {
		t.Errorf("state count after clear = %d, want 0", len(got))
	}
}

func TestStateFeedSnapshotMessage(t *testing.T) {
	feed := NewStateFeed()
	feed.Apply(StateUpdatePayload{States: map[string]json.RawMessage{
		"valve-3": raw(`{"open":true}`),
	}})

	msg := feed.SnapshotMessage()
	if msg == nil {
		t.Fatal("snapshot message is nil")
	}
	if msg.Type != TypeStateSnapshot {
		t.Errorf("type = %q, want %q", msg.Type, TypeStateSnapshot)
	}

	var payload StateSnapshotPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if string(payload.States["valve-3"]) != `{"open":true}` {
		t.Errorf("valve-3 = %s, want stored value", payload.States["valve-3"])
	}
}
