package engine

// Signal is a multicast notification channel. Subscribers are held in an
// explicit list and removed deterministically; Clear drops every subscriber at
// once, which Destroy uses to guarantee no dangling subscriptions outlive a
// node.
type Signal[T any] struct {
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a token for Unsubscribe.
func (s *Signal[T]) Subscribe(fn func(T)) int {
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes the subscriber registered under token. Unknown tokens
// are ignored.
func (s *Signal[T]) Unsubscribe(token int) {
	for i, sub := range s.subs {
		if sub.id == token {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Trigger invokes every subscriber in subscription order.
func (s *Signal[T]) Trigger(v T) {
	// Copy so a subscriber that unsubscribes mid-trigger doesn't skip others.
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Clear removes all subscribers.
func (s *Signal[T]) Clear() {
	s.subs = nil
	s.nextID = 0
}

// Len returns the current subscriber count.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}
