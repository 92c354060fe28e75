// Package defers provides scoped deferred-execution primitives: a
// single-action Slot and an ordered multi-action Group, both drained
// through Go's defer statement on every exit path, normal return and
// panic alike.
//
// The primitives are strictly scope-local and single-threaded. Nothing
// in this package takes a lock; sharing a Slot or Group between
// goroutines is unsupported.
package defers

// Func is a deferred action: a nullary, single-use function. A Func is
// consumed when its owner runs it and is never invoked twice.
type Func func()
