package hooks

import "fmt"

// HookType identifies the kind of hook that owns a slot.
type HookType uint8

const (
	HookState HookType = iota + 1
	HookMemo
	HookRef
	HookEffect
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookState:
		return "State"
	case HookMemo:
		return "Memo"
	case HookRef:
		return "Ref"
	case HookEffect:
		return "Effect"
	default:
		return "Unknown"
	}
}

// Store holds hook slot contents across render cycles.
//
// State, memo and ref hooks share one cursor and one slot list. Effects use
// a second cursor over a parallel list of effect slots. A Store is owned by
// one root and must only be used from that root's goroutine.
type Store struct {
	slots []any
	kinds []HookType

	effects []effectSlot

	rerender func()
	onError  func(error)
	strict   bool

	// seq counts cycles; a flush stops once a newer cycle has begun.
	seq       uint64
	rendering bool
	disposed  bool
}

// Option configures a Store.
type Option func(*Store)

// WithRerender sets the function state setters call after committing a
// changed value.
func WithRerender(fn func()) Option {
	return func(s *Store) {
		s.rerender = fn
	}
}

// WithErrorHandler sets the sink for errors that have no caller to return
// to, such as ErrSetDuringRender.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onError = fn
	}
}

// StrictOrder enables hook order validation: every hook call is checked
// against the kind recorded for its slot, and a cycle that calls fewer hooks
// than were allocated fails in End.
func StrictOrder() Option {
	return func(s *Store) {
		s.strict = true
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SlotCount returns the number of allocated state, memo and ref slots.
func (s *Store) SlotCount() int {
	return len(s.slots)
}

// EffectCount returns the number of allocated effect slots.
func (s *Store) EffectCount() int {
	return len(s.effects)
}

// Rendering reports whether a cycle is between Begin and End.
func (s *Store) Rendering() bool {
	return s.rendering
}

// Begin starts a render cycle. Cursors start at zero and the pending
// effect queue is empty.
func (s *Store) Begin() *Cycle {
	s.seq++
	s.rendering = true
	return &Cycle{store: s, seq: s.seq}
}

func (s *Store) report(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}

// changed is called by setters after a value was committed.
func (s *Store) changed() {
	switch {
	case s.disposed:
		s.report(ErrDisposed)
	case s.rendering:
		s.report(ErrSetDuringRender)
	case s.rerender != nil:
		s.rerender()
	}
}

// Dispose runs every outstanding effect cleanup once, in slot order, and
// detaches the store from its re-render function.
func (s *Store) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.seq++
	for i := range s.effects {
		if cleanup := s.effects[i].cleanup; cleanup != nil {
			s.effects[i].cleanup = nil
			cleanup()
		}
	}
}

// Cycle is the context for one render pass. It is passed explicitly to
// every render function and must not be retained after the pass ends.
type Cycle struct {
	store        *Store
	seq          uint64
	cursor       int
	effectCursor int
	pending      []pendingEffect
	ended        bool
}

// Store returns the store the cycle renders against.
func (c *Cycle) Store() *Store {
	return c.store
}

// HookCount returns the number of state, memo and ref hooks called so far.
func (c *Cycle) HookCount() int {
	return c.cursor
}

// Pending returns the number of effects queued so far.
func (c *Cycle) Pending() int {
	return len(c.pending)
}

// End marks materialization as finished. Setters called after End trigger
// re-renders again. In strict mode End reports a cycle that called fewer
// hooks than the store has slots for.
func (c *Cycle) End() error {
	if c.ended {
		return nil
	}
	c.ended = true
	s := c.store
	if c.seq == s.seq {
		s.rendering = false
	}
	if s.strict && c.cursor < len(s.slots) {
		return fmt.Errorf("%w: expected %d hooks, got %d", ErrHookOrder, len(s.slots), c.cursor)
	}
	return nil
}

// next advances the shared cursor and returns the slot index and its
// current content (nil when the slot is new).
func (c *Cycle) next(kind HookType) (int, any) {
	s := c.store
	idx := c.cursor
	c.cursor++

	if idx >= len(s.slots) {
		s.slots = append(s.slots, nil)
		s.kinds = append(s.kinds, kind)
		return idx, nil
	}
	if s.strict && s.kinds[idx] != kind {
		panic(fmt.Errorf("%w: slot %d holds %s, got %s", ErrHookOrder, idx, s.kinds[idx], kind))
	}
	return idx, s.slots[idx]
}

func (c *Cycle) set(idx int, kind HookType, value any) {
	c.store.slots[idx] = value
	c.store.kinds[idx] = kind
}

func mismatch(idx int, kind HookType, got any) error {
	return fmt.Errorf("%w: slot %d holds %T, want %s", ErrHookOrder, idx, got, kind)
}
