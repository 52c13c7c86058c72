package views

import (
	"context"
	"sync"
)

// Superseder tracks one stream of requests where only the newest matters.
// Starting a request cancels the one in flight, and a result from a
// superseded request is never applied.
type Superseder struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

type Ticket struct {
	s      *Superseder
	seq    uint64
	cancel context.CancelFunc
}

// Begin starts a new request derived from ctx.
func (s *Superseder) Begin(ctx context.Context) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}

	s.seq++
	s.cancel = cancel
	t := &Ticket{s: s, seq: s.seq, cancel: cancel}
	s.mu.Unlock()

	return ctx, t
}

// Current reports whether no newer request has started.
func (t *Ticket) Current() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	return t.s.seq == t.seq
}

// Apply runs fn if the ticket is still current. No newer request can begin
// while fn runs.
func (t *Ticket) Apply(fn func()) bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.s.seq != t.seq {
		return false
	}

	fn()

	return true
}

// Done releases the request context.
func (t *Ticket) Done() {
	t.cancel()

	t.s.mu.Lock()
	if t.s.seq == t.seq {
		t.s.cancel = nil
	}
	t.s.mu.Unlock()
}

// Latest runs fetch under a new ticket and hands its result to apply unless
// a newer request has started meanwhile.
func Latest[T any](ctx context.Context, s *Superseder, fetch func(context.Context) (T, error), apply func(T)) (bool, error) {
	ctx, t := s.Begin(ctx)
	defer t.Done()

	v, err := fetch(ctx)
	if err != nil {
		if !t.Current() {
			return false, nil
		}

		return false, err
	}

	return t.Apply(func() { apply(v) }), nil
}

// SupersedeGroup keeps one Superseder per client key.
type SupersedeGroup struct {
	mu sync.Mutex
	m  map[string]*groupEntry
}

type groupEntry struct {
	s    Superseder
	refs int
}

// Acquire returns the Superseder shared by every request for key. The
// returned release func must be called when the request ends.
func (g *SupersedeGroup) Acquire(key string) (*Superseder, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.m == nil {
		g.m = make(map[string]*groupEntry)
	}

	e, ok := g.m[key]
	if !ok {
		e = &groupEntry{}
		g.m[key] = e
	}
	e.refs++

	return &e.s, func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		e.refs--
		if e.refs == 0 {
			delete(g.m, key)
		}
	}
}

// Len is the number of keys with a request in flight.
func (g *SupersedeGroup) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.m)
}
