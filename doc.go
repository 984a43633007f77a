// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delim provides multi-prompt delimited control in Go.
//
// The core type [Control] represents a suspended computation that, given a
// metacontinuation — an explicit chain of pending frames — produces a
// [Result]. On top of this encoding the package offers the delimited
// control operators [Reset] and [Shift0]: Reset installs a fresh, unique
// [Prompt] marking one delimited region, and Shift0 captures "the rest of
// the computation up to that prompt" as a first-class, multi-shot
// [Resumption] that may be invoked zero, one, or many times, from anywhere.
//
// # Design Philosophy
//
// delim provides:
//   - Minimal but complete primitives for building effect handlers: Pure,
//     Reset, and Shift0 are the entire contract a handler layer needs
//   - Defunctionalized metacontinuations: frames are tagged data, not
//     nested closures, so splitting and re-joining at a prompt are
//     structural operations with clear ownership
//   - A trampolined driver that discharges arbitrarily long computation
//     chains in constant native stack
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a value into a computation ([Delay] for the deferred form)
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding the first result
//   - [Filter]: Gate a result on a predicate; rejection becomes a failure
//
// Failure:
//
//   - [Fail]: A computation that aborts with an error
//
// A failure is poison: it propagates through Map, Bind, Then, and Filter
// without invoking any pending function, bypasses prompt frames, and
// surfaces only from [Run]. The package deliberately provides no catching
// combinator; recovery is a handler-layer concern built on Shift0.
//
// # Delimited Control
//
//   - [Reset]: Install a fresh [Prompt] and run a region under it
//   - [Shift0]: Capture and discharge the continuation up to a prompt
//
// Unlike single-prompt shift/reset (Danvy & Filinski 1990), regions are
// identified by first-class prompt values in the style of Gunter, Rémy &
// Riecke (1995): many regions can be active at once, prompts can be stored
// and passed around, and each Shift0 targets exactly the region whose
// prompt it holds. The shift0 variant (Materzok & Biernacki 2011) consumes
// the prompt frame it captures through: the handler runs outside the
// region, and resuming does not reinstall the marker.
//
// # Metacontinuation
//
// [MetaCont] is a persistent chain of tagged frames following Reynolds
// (1972) defunctionalization:
//
//   - [TransformFrame]: a pending pure transformation (from Map)
//   - [SeqFrame]: a pending computation-producing step (from Bind)
//   - [PromptFrame]: the boundary installed by one Reset activation
//
// Chains are immutable after construction. [SplitAt] divides a chain at a
// prompt into an independent captured prefix and the context beyond the
// region; [MetaCont.Append] re-joins chains without mutating either input.
// This is what makes a captured [Resumption] genuinely multi-shot: every
// invocation replays the shared prefix against a fresh tail.
//
// # Trampoline
//
// [Run] drives a computation with an explicit work-list loop: each step
// applies the current [Control] to the current [MetaCont] and either
// finishes ([Result] Done or Abort) or yields the next (computation,
// continuation) pair. Sequencing never recurses through the native stack,
// so chains of 10^5 binds and deeply nested regions execute in bounded
// stack.
//
// Values inside frames and results are type-erased ([Erased]); concrete
// types are recovered via assertions at the Run boundary, with the typed
// constructors guaranteeing consistency.
//
// # Affine Resumptions
//
// Resumptions are multi-shot by default. [Once] wraps a [Resumption] with
// affine (at-most-once) enforcement for handlers that must not replay:
//
//   - [Affine.Resume]: Invoke (panics on reuse)
//   - [Affine.TryResume]: Non-panicking variant
//   - [Affine.Discard]: Drop without invoking
//
// # Example
//
//	sum := delim.Reset(func(p *delim.Prompt[int]) delim.Control[int] {
//		return delim.Map(
//			delim.Shift0(p, func(k delim.Resumption[int, int]) delim.Control[int] {
//				// Resume twice and add the two replays.
//				return delim.Bind(k(1), func(a int) delim.Control[int] {
//					return delim.Map(k(2), func(b int) int { return a + b })
//				})
//			}),
//			func(x int) int { return x * 10 },
//		)
//	})
//	v, err := delim.Run(sum)
//	// v == 30, err == nil
package delim
