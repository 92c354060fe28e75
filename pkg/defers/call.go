package defers

// Call freezes a one-argument function call into a deferred action. The
// argument expression is evaluated here, at registration time, and the
// returned Func later invokes fn with that frozen value. To evaluate
// the argument at execution time instead, register a closure:
//
//	g.Add(defers.Call(report, counter))  // sees counter as it is now
//	g.Add(func() { report(counter) })    // sees counter as it will be
func Call[A any](fn func(A), arg A) Func {
	return func() { fn(arg) }
}

// Call2 is Call for two-argument functions.
func Call2[A, B any](fn func(A, B), a A, b B) Func {
	return func() { fn(a, b) }
}

// Call3 is Call for three-argument functions.
func Call3[A, B, C any](fn func(A, B, C), a A, b B, c C) Func {
	return func() { fn(a, b, c) }
}
