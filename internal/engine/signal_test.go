package engine

import "testing"

func TestSignalSubscribeTrigger(t *testing.T) {
	var s Signal[int]
	var got []int

	s.Subscribe(func(v int) { got = append(got, v) })
	s.Subscribe(func(v int) { got = append(got, v*10) })

	s.Trigger(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("got %v, want [3 30] in subscription order", got)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	var s Signal[struct{}]
	calls := 0

	token := s.Subscribe(func(struct{}) { calls++ })
	s.Subscribe(func(struct{}) { calls += 100 })

	s.Unsubscribe(token)
	s.Unsubscribe(999) // unknown token is ignored

	s.Trigger(struct{}{})
	if calls != 100 {
		t.Errorf("calls = %d, want 100", calls)
	}
}

func TestSignalClear(t *testing.T) {
	var s Signal[struct{}]
	calls := 0
	s.Subscribe(func(struct{}) { calls++ })

	s.Clear()
	s.Trigger(struct{}{})

	if calls != 0 {
		t.Errorf("calls after Clear = %d, want 0", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
}

func TestSignalUnsubscribeDuringTrigger(t *testing.T) {
	var s Signal[struct{}]
	var token int
	first := 0
	second := 0

	token = s.Subscribe(func(struct{}) {
		first++
		s.Unsubscribe(token)
	})
	s.Subscribe(func(struct{}) { second++ })

	s.Trigger(struct{}{})
	s.Trigger(struct{}{})

	if first != 1 {
		t.Errorf("self-unsubscribing handler ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("second handler ran %d times, want 2", second)
	}
}
