// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// resultKind discriminates the three Result variants.
type resultKind uint8

const (
	resultDone resultKind = iota
	resultAbort
	resultComputation
)

// Result is the outcome of one trampoline step: a final value, a
// propagated failure, or a further (computation, continuation) pair to
// re-enter the loop with. Values are type-erased at this boundary; [Run]
// recovers the concrete type.
type Result struct {
	kind  resultKind
	value Erased
	err   error
	next  Control[Erased]
	cont  *MetaCont
}

// Done creates a final Result carrying a value.
func Done(v Erased) Result {
	return Result{kind: resultDone, value: v}
}

// Abort creates a final Result carrying a failure.
func Abort(err error) Result {
	return Result{kind: resultAbort, err: err}
}

// Computation creates a non-final Result: the trampoline continues by
// applying next to cont.
func Computation(next Control[Erased], cont *MetaCont) Result {
	return Result{kind: resultComputation, next: next, cont: cont}
}

// IsDone returns true if this is a final value.
func (r Result) IsDone() bool {
	return r.kind == resultDone
}

// IsAbort returns true if this is a propagated failure.
func (r Result) IsAbort() bool {
	return r.kind == resultAbort
}

// IsComputation returns true if more work remains.
func (r Result) IsComputation() bool {
	return r.kind == resultComputation
}

// Value returns the final value and true, or nil and false.
func (r Result) Value() (Erased, bool) {
	if r.kind != resultDone {
		return nil, false
	}
	return r.value, true
}

// Failure returns the failure and true, or nil and false.
func (r Result) Failure() (error, bool) {
	if r.kind != resultAbort {
		return nil, false
	}
	return r.err, true
}

// Step returns the pending (computation, continuation) pair and true,
// or zero values and false.
func (r Result) Step() (Control[Erased], *MetaCont, bool) {
	if r.kind != resultComputation {
		return Control[Erased]{}, nil, false
	}
	return r.next, r.cont, true
}
