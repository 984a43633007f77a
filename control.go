// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Control represents a suspended, possibly effectful computation producing
// a value of type A. Applying it to a metacontinuation yields a [Result].
//
// Three runtime variants share the struct: a trivial computation (a strict
// value or a deferred thunk), a failed computation (an error), and a
// suspended computation (a body needing the continuation). The variant is
// discriminated by which field is populated; the zero value behaves as
// Pure of A's zero value.
//
// A Control is stateless data: it describes how to build a result given a
// continuation, and may be applied any number of times.
type Control[A any] struct {
	value A
	thunk func() A
	err   error
	body  func(*MetaCont) Result
}

// Pure lifts a value into a computation with no effects.
// The resulting computation immediately hands the value to its
// continuation and never fails.
func Pure[A any](a A) Control[A] {
	return Control[A]{value: a}
}

// Delay lifts a deferred value into a computation with no effects.
// f runs only when the result is observed — once per application of the
// computation, not at construction time.
func Delay[A any](f func() A) Control[A] {
	return Control[A]{thunk: f}
}

// Fail creates a computation that aborts with err.
// The failure is poison: it bypasses every pending frame — no function
// composed via [Map], [Bind], [Then], or [Filter] runs — and surfaces
// from [Run].
func Fail[A any](err error) Control[A] {
	return Control[A]{err: err}
}

// Suspend creates a computation from a body with direct access to the
// metacontinuation. This is the primitive constructor underlying [Reset]
// and [Shift0]; bodies cross the [Erased] boundary and are themselves
// responsible for type consistency.
func Suspend[A any](body func(k *MetaCont) Result) Control[A] {
	return Control[A]{body: body}
}

// apply feeds the computation its continuation, producing one step.
// A failed computation discards the continuation outright (poison).
func (c Control[A]) apply(k *MetaCont) Result {
	switch {
	case c.body != nil:
		return c.body(k)
	case c.err != nil:
		return Abort(c.err)
	case c.thunk != nil:
		return k.Apply(c.thunk())
	default:
		return k.Apply(c.value)
	}
}

// erase converts a typed computation to the type-erased form used inside
// frames and results. Suspended and failed variants convert field-for-field;
// a deferred trivial keeps its thunk behind one wrapper.
func erase[A any](c Control[A]) Control[Erased] {
	switch {
	case c.body != nil:
		return Control[Erased]{body: c.body}
	case c.err != nil:
		return Control[Erased]{err: c.err}
	case c.thunk != nil:
		t := c.thunk
		return Control[Erased]{thunk: func() Erased { return t() }}
	default:
		return Control[Erased]{value: c.value}
	}
}
