// Package store holds the in-process entity stores. Each store is the single
// source of truth for one collection: it keeps the last successful snapshot,
// a loading flag, and a typed error slot, and mediates every read and write
// against its remote gateway. Stores are constructed once at startup and
// injected into the controllers; there are no package-level singletons.
//
// Concurrency contract: operations may overlap. The loading flag is backed by
// an in-flight counter, so overlapping calls can never leave it stuck true,
// but no ordering is guaranteed between overlapping completions — the last
// writer wins. Cancellation rides on the context passed to each operation.
package store

import "sync"

// status is the state shared by every entity store: the in-flight counter
// behind the loading flag, the error slot, and the subscriber list. It is
// embedded so stores guard their snapshot with the same mutex.
type status struct {
	mu       sync.Mutex
	inflight int
	err      error
	subs     map[int]func()
	nextSub  int
}

// begin marks an operation as in flight and clears the error slot.
// Subscribers observe the transition before the operation proceeds.
func (s *status) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = nil
	s.mu.Unlock()
	s.notify()
}

// end completes an operation, recording its error if any. Runs in a defer on
// every operation so the loading flag clears on all paths.
func (s *status) end(opErr error) {
	s.mu.Lock()
	s.inflight--
	if opErr != nil {
		s.err = opErr
	}
	s.mu.Unlock()
	s.notify()
}

// Loading reports whether at least one operation is in flight.
func (s *status) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the error recorded by the most recent failed operation, or nil
// if the most recent operation began cleanly.
func (s *status) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Subscribe registers fn to run after every state transition. Notifications
// fire synchronously before the triggering operation returns. The returned
// function unsubscribes.
func (s *status) Subscribe(fn func()) func() {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *status) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
