// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Resumption is a captured delimited continuation reified as an ordinary
// callable: given the value the suspended computation was waiting for, it
// produces the region's computation from that point on.
//
// Resumptions are multi-shot: each invocation is an independent replay of
// the captured frames against whatever continuation the resumption is
// composed with, including after the dynamic extent that created it has
// ended. Wrap with [Once] for affine enforcement.
type Resumption[A, R any] func(a A) Control[R]

// Shift0 captures the continuation up to — and discharging — prompt p,
// and hands it to f as a [Resumption].
//
// The default "fall through to the boundary" behavior is discarded: f has
// full authority over whether, how many times, and with what values the
// suspended computation resumes. The computation f returns produces the
// region's final value, which flows to the context outside the enclosing
// [Reset] — control resumes after the region, not inside it, unless f
// invokes the resumption.
//
// Invoking Shift0 outside the dynamic extent of p's [Reset] — against an
// already discharged or never installed prompt — is a contract violation
// and panics.
func Shift0[A, R any](p *Prompt[R], f func(k Resumption[A, R]) Control[R]) Control[A] {
	return Control[A]{body: func(k *MetaCont) Result {
		init, tail, ok := SplitAt(k, p)
		if !ok {
			panic("delim: " + p.String() + " is not delimiting the current continuation")
		}
		resume := Resumption[A, R](func(a A) Control[R] {
			return Control[R]{body: func(k2 *MetaCont) Result {
				return init.Append(k2).Apply(a)
			}}
		})
		return Computation(erase(f(resume)), tail)
	}}
}
