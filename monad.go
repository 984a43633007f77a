// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import "fmt"

// Monad operations for computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate frame and closure allocations.

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to get the dependent computation.
// Implemented by pushing a sequencing frame onto whatever continuation
// eventually arrives; a failed m re-wraps its failure without calling f.
//
// Bind never collapses a trivial receiver at construction time: a chain
// built by deep recursion must unwind on the trampoline, not the native
// stack.
func Bind[A, B any](m Control[A], f func(A) Control[B]) Control[B] {
	if m.err != nil {
		return Control[B]{err: m.err}
	}
	return Control[B]{body: func(k *MetaCont) Result {
		seq := &SeqFrame{F: func(v Erased) Control[Erased] {
			return erase(f(v.(A)))
		}}
		return Computation(erase(m), k.Push(seq))
	}}
}

// Map applies a pure function to the result of a computation.
//
// A trivial receiver short-circuits without a suspension layer: a strict
// value is transformed directly, a deferred value stays deferred behind
// the composed thunk. A failed receiver re-wraps its failure without
// calling f.
func Map[A, B any](m Control[A], f func(A) B) Control[B] {
	if m.body == nil {
		if m.err != nil {
			return Control[B]{err: m.err}
		}
		if m.thunk != nil {
			t := m.thunk
			return Control[B]{thunk: func() B { return f(t()) }}
		}
		return Pure(f(m.value))
	}
	return Control[B]{body: func(k *MetaCont) Result {
		tf := &TransformFrame{F: func(v Erased) Erased {
			return f(v.(A))
		}}
		return Computation(erase(m), k.Push(tf))
	}}
}

// Then sequences two computations, discarding the first result.
// This is more efficient than Bind when the second computation does not
// depend on the first result: no transformation closure is captured.
func Then[A, B any](m Control[A], n Control[B]) Control[B] {
	if m.err != nil {
		return Control[B]{err: m.err}
	}
	return Control[B]{body: func(k *MetaCont) Result {
		seq := &SeqFrame{F: func(Erased) Control[Erased] {
			return erase(n)
		}}
		return Computation(erase(m), k.Push(seq))
	}}
}

// MatchError is the failure carried by a computation whose result was
// rejected by a [Filter] predicate.
type MatchError struct {
	// Value is the rejected value.
	Value any
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("delim: filter: could not match %v", e.Value)
}

// Filter gates a computation's result on a predicate. Where pred holds the
// result passes through unchanged; a rejected value resolves to a failure
// carrying a [*MatchError] — never a silently skipped computation.
//
// The failure is uncatchable from within this package: like any other
// poison it bypasses all pending frames, prompt boundaries included, and
// surfaces from [Run].
func Filter[A any](m Control[A], pred func(A) bool) Control[A] {
	return Bind(m, func(a A) Control[A] {
		if pred(a) {
			return Pure(a)
		}
		return Fail[A](&MatchError{Value: a})
	})
}
