// Package fetch orders asynchronous fetch results so that only the most
// recently issued request of each kind may update state.
package fetch

import "sync"

// Kind identifies an independent stream of fetches.
type Kind string

const (
	// KindItems is the catalog item list.
	KindItems Kind = "items"
	// KindCart is the active cart.
	KindCart Kind = "cart"
	// KindOrders is the order history.
	KindOrders Kind = "orders"
)

// Ticket is issued when a fetch starts and must be presented with its result.
type Ticket struct {
	Kind Kind
	Seq  uint64
}

// Sequencer hands out tickets and accepts only the latest one per kind.
// It is safe for concurrent use. The zero value is ready to use.
type Sequencer struct {
	mu     sync.Mutex
	latest map[Kind]uint64
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[Kind]uint64)}
}

// Next issues a ticket for kind that supersedes every earlier ticket of the same kind.
func (s *Sequencer) Next(kind Kind) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		s.latest = make(map[Kind]uint64)
	}
	s.latest[kind]++
	return Ticket{Kind: kind, Seq: s.latest[kind]}
}

// Accept reports whether t is still the most recent ticket of its kind.
// A result carrying a superseded ticket must be dropped.
func (s *Sequencer) Accept(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return t.Seq != 0 && s.latest[t.Kind] == t.Seq
}

// Invalidate supersedes all outstanding tickets of every kind, e.g. on logout.
func (s *Sequencer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for kind := range s.latest {
		s.latest[kind]++
	}
}
