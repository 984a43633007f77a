// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"sync/atomic"
)

// Affine wraps a [Resumption] with one-shot enforcement.
// The resumption can be invoked at most once; subsequent attempts panic
// (Resume) or return false (TryResume).
//
// Resumptions are multi-shot by default. Affine is the opt-in discipline
// for handlers whose captured continuation must not be duplicated —
// generators, coroutines, and other protocols where a replay would
// re-issue external work.
type Affine[A, R any] struct {
	used   atomic.Uintptr
	resume Resumption[A, R]
}

// Once creates an affine resumption from a regular one.
// The returned Affine can be resumed at most once.
func Once[A, R any](k Resumption[A, R]) *Affine[A, R] {
	return &Affine[A, R]{resume: k}
}

// Resume invokes the resumption with the given value.
// Panics if the resumption has already been used. The one-shot budget is
// spent here, at reification time, not when the returned computation runs.
func (a *Affine[A, R]) Resume(v A) Control[R] {
	if a.used.Add(1) != 1 {
		panic("delim: affine resumption resumed twice")
	}
	return a.resume(v)
}

// TryResume attempts to invoke the resumption.
// Returns (computation, true) on success, or (zero, false) if already used.
func (a *Affine[A, R]) TryResume(v A) (Control[R], bool) {
	if a.used.Add(1) != 1 {
		return Control[R]{}, false
	}
	return a.resume(v), true
}

// Discard marks the resumption as used without invoking it.
// This is the explicit form of abort-by-discard: the captured frames are
// dropped and the region short-circuits to whatever the handler returns.
func (a *Affine[A, R]) Discard() {
	a.used.Store(1)
}
