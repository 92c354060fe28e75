package defers

// Slot owns exactly one deferred action and runs it exactly once.
//
// A Slot is bound to its scope with the defer statement:
//
//	s := defers.NewSlot(func() { release(resource) })
//	defer s.Run()
type Slot struct {
	fn Func
}

// NewSlot creates a Slot holding fn. It panics if fn is nil: a Slot is
// never empty between construction and teardown.
func NewSlot(fn Func) *Slot {
	if fn == nil {
		panic("defers: NewSlot called with nil function")
	}

	return &Slot{fn: fn}
}

// Run takes the action out of the slot and invokes it. Go does not
// enforce a single teardown point the way ownership-based destruction
// does, so a second Run is caught at runtime and panics instead of
// re-invoking the action.
//
// If the action itself panics, the panic propagates out of Run
// unmodified.
func (s *Slot) Run() {
	if s.fn == nil {
		panic("defers: Slot has already run")
	}

	fn := s.fn
	s.fn = nil
	fn()
}
