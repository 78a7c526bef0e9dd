package cart

import (
	"sync"

	"storefront/internal/domain"
)

// State is the observable container holding the current line-item
// list. Set notifies subscribers synchronously, in subscription order,
// against a snapshot of the listener list taken when the notification
// starts: subscribing or unsubscribing from inside a callback affects
// later notifications only, never the one in flight.
type State struct {
	mu     sync.Mutex
	items  []domain.Item
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func([]domain.Item)
}

func NewState(initial []domain.Item) *State {
	s := &State{}
	s.items = cloneItems(initial)
	return s
}

// Get returns a copy of the current items.
func (s *State) Get() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Set replaces the items and synchronously invokes every subscriber
// with the new value.
func (s *State) Set(items []domain.Item) {
	s.mu.Lock()
	s.items = cloneItems(items)
	snapshot := make([]subscriber, len(s.subs))
	copy(snapshot, s.subs)
	current := cloneItems(s.items)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(current)
	}
}

// Update applies fn to the current items and Sets the result. Callers
// must serialize Update invocations; the engine run loop does.
func (s *State) Update(fn func([]domain.Item) []domain.Item) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn and returns a function that deregisters it.
// Unsubscribing twice is harmless.
func (s *State) Subscribe(fn func([]domain.Item)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func cloneItems(items []domain.Item) []domain.Item {
	if items == nil {
		return nil
	}
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
