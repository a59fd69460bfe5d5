package fetch

import (
	"sync"
	"testing"
)

func TestSequencer_LatestWins(t *testing.T) {
	s := NewSequencer()

	first := s.Next(KindItems)
	second := s.Next(KindItems)

	if s.Accept(first) {
		t.Error("superseded ticket should be rejected")
	}
	if !s.Accept(second) {
		t.Error("latest ticket should be accepted")
	}
}

func TestSequencer_KindsAreIndependent(t *testing.T) {
	s := NewSequencer()

	items := s.Next(KindItems)
	cart := s.Next(KindCart)
	_ = s.Next(KindOrders)

	if !s.Accept(items) || !s.Accept(cart) {
		t.Error("tickets of different kinds must not supersede each other")
	}
}

func TestSequencer_AcceptIsRepeatable(t *testing.T) {
	s := NewSequencer()
	tk := s.Next(KindCart)

	if !s.Accept(tk) || !s.Accept(tk) {
		t.Error("Accept should not consume the ticket")
	}
}

func TestSequencer_ZeroValue(t *testing.T) {
	var s Sequencer
	if s.Accept(Ticket{Kind: KindItems}) {
		t.Error("zero ticket should never be accepted")
	}
	tk := s.Next(KindItems)
	if tk.Seq != 1 || !s.Accept(tk) {
		t.Errorf("unexpected ticket %+v", tk)
	}
}

func TestSequencer_Invalidate(t *testing.T) {
	s := NewSequencer()
	items := s.Next(KindItems)
	orders := s.Next(KindOrders)

	s.Invalidate()

	if s.Accept(items) || s.Accept(orders) {
		t.Error("Invalidate should reject all outstanding tickets")
	}
	if !s.Accept(s.Next(KindItems)) {
		t.Error("tickets issued after Invalidate should be accepted")
	}
}

func TestSequencer_Concurrent(t *testing.T) {
	s := NewSequencer()
	var wg sync.WaitGroup
	seen := make(chan uint64, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- s.Next(KindItems).Seq
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool)
	for seq := range seen {
		if unique[seq] {
			t.Fatalf("sequence %d issued twice", seq)
		}
		unique[seq] = true
	}
	if !s.Accept(Ticket{Kind: KindItems, Seq: 100}) {
		t.Error("ticket 100 should be the latest")
	}
}
