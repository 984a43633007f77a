// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Run drives a computation to completion with the empty ("return to
// caller") continuation and returns its value, or the original failure if
// the outcome was an abort.
//
// The driver is iterative: each step applies the current computation to
// the current metacontinuation and either finishes or yields the next
// (computation, continuation) pair. Native stack use is bounded regardless
// of how many sequencing steps the computation contains.
//
// Nil completion convention: a Done value of nil reports the zero value of
// A. Computations whose result type is a pointer or interface therefore
// cannot distinguish "completed with nil" from "completed with zero".
func Run[A any](c Control[A]) (A, error) {
	r := RunWith(c, nil)
	if err, ok := r.Failure(); ok {
		var zero A
		return zero, err
	}
	v, _ := r.Value()
	if v == nil {
		var zero A
		return zero, nil
	}
	return v.(A), nil
}

// RunWith drives a computation against a caller-supplied continuation
// until the trampoline reaches a final result. The returned Result is
// Done or Abort, never Computation.
func RunWith[A any](c Control[A], k *MetaCont) Result {
	r := c.apply(k)
	for {
		next, cont, more := r.Step()
		if !more {
			return r
		}
		r = next.apply(cont)
	}
}
