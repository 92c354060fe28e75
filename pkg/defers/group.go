package defers

import (
	"fmt"
	"strings"
)

// Group owns an ordered sequence of deferred actions and runs all of
// them, head to tail, exactly once.
//
// Add inserts at the head, so among Add calls the most recently
// registered action runs first, matching the teardown order of nested
// resources. Push inserts at the tail, so among Push calls the first
// registered action runs first. Mixed call patterns replay the
// insertion history onto both ends of one sequence; Run walks whatever
// order that history produced.
//
// A Group is bound to its scope with the defer statement:
//
//	g := defers.NewGroup()
//	defer g.Run()
//
// Any code holding the *Group may register into it, including code in
// more deeply nested scopes; the group still drains when the scope that
// deferred its Run exits. The registering scope must not outlive the
// owning one.
//
// A Group is not safe for concurrent use.
type Group struct {
	fns     []Func
	drained bool
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Add inserts fn at the head of the group, ahead of every action
// already registered. It panics if fn is nil or the group has already
// run.
func (g *Group) Add(fn Func) {
	g.validate(fn)
	g.fns = append([]Func{fn}, g.fns...)
}

// Push inserts fn at the tail of the group, after every action already
// registered. It panics if fn is nil or the group has already run.
func (g *Group) Push(fn Func) {
	g.validate(fn)
	g.fns = append(g.fns, fn)
}

func (g *Group) validate(fn Func) {
	if g.drained {
		// Registration through a stale handle, after the owning scope
		// already exited.
		panic("defers: Group has already run")
	}

	if fn == nil {
		panic("defers: nil function registered")
	}
}

// Run drains the group: every pending action is removed and invoked in
// sequence order, leaving the group empty. A second Run panics.
//
// A panic inside one action does not abandon the rest of the drain.
// Every remaining action is still attempted, mirroring how Go runs
// every pending defer during unwinding. Once the sweep completes, Run
// re-panics with the original value if exactly one action panicked, or
// with a *DrainError carrying every recovered value if several did.
func (g *Group) Run() {
	if g.drained {
		panic("defers: Group has already run")
	}
	g.drained = true

	var recovered []any
	for i, fn := range g.fns {
		g.fns[i] = nil
		if r := protect(fn); r != nil {
			recovered = append(recovered, r)
		}
	}
	g.fns = nil

	switch len(recovered) {
	case 0:
	case 1:
		panic(recovered[0])
	default:
		panic(&DrainError{Recovered: recovered})
	}
}

func protect(fn Func) (r any) {
	defer func() { r = recover() }()
	fn()

	return nil
}

// DrainError is the panic value raised by Group.Run when more than one
// action panicked during the same drain. Recovered holds the original
// panic values in execution order.
type DrainError struct {
	Recovered []any
}

func (e *DrainError) Error() string {
	msgs := make([]string, 0, len(e.Recovered))
	for _, r := range e.Recovered {
		msgs = append(msgs, fmt.Sprintf("%v", r))
	}

	return fmt.Sprintf("%d deferred actions panicked: %s",
		len(e.Recovered), strings.Join(msgs, "; "))
}
