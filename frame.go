// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Erased represents a type-erased value flowing through the frame chain.
// Frames process heterogeneous value types through a homogeneous
// evaluation pipeline; concrete types are recovered via type assertions
// at frame boundaries and at the [Run] boundary.
type Erased = any

// Frame is the interface for metacontinuation frames.
// Implementations carry the data needed to continue computation.
// Dispatch uses type switches — Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// TransformFrame represents a pending pure transformation, produced by [Map].
// Applying the chain rewrites the current value with F and continues.
type TransformFrame struct {
	// F is the transformation to apply to the incoming value.
	F func(Erased) Erased
}

func (*TransformFrame) frame() {}

// SeqFrame represents a pending computation-producing step, produced by
// [Bind] and [Then]. Applying the chain feeds the incoming value to F and
// yields a Computation step for the trampoline.
type SeqFrame struct {
	// F produces the next computation from the incoming value.
	F func(Erased) Control[Erased]
}

func (*SeqFrame) frame() {}

// PromptFrame marks the boundary installed by one [Reset] activation.
// Applying the chain passes the incoming value through unchanged: reaching
// the frame discharges the region, and no further [Shift0] may target it
// from this continuation.
//
// A well-formed chain contains at most one PromptFrame per live prompt
// activation.
type PromptFrame struct {
	// ID is the identity of the prompt that installed this boundary.
	ID uint64
}

func (*PromptFrame) frame() {}

// MetaCont is a persistent metacontinuation: an ordered chain of frames
// mapping a value to a [Result]. The head frame runs first; the nil chain
// is the identity continuation, which reports its argument as Done.
//
// Chains are immutable after construction. Push, Append, and SplitAt share
// structure freely but never mutate an input, so captured chains can be
// stored and replayed arbitrarily many times.
type MetaCont struct {
	head Frame
	tail *MetaCont
}

// Push prepends a frame, returning the extended chain.
// The receiver is unchanged.
func (k *MetaCont) Push(f Frame) *MetaCont {
	return &MetaCont{head: f, tail: k}
}

// Head returns the first frame of the chain, or nil for the empty chain.
func (k *MetaCont) Head() Frame {
	if k == nil {
		return nil
	}
	return k.head
}

// Tail returns the chain after the first frame.
func (k *MetaCont) Tail() *MetaCont {
	if k == nil {
		return nil
	}
	return k.tail
}

// Len returns the number of frames in the chain.
func (k *MetaCont) Len() int {
	n := 0
	for cur := k; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// Apply runs the chain on a value.
// Transform frames rewrite the value in place, prompt frames discharge and
// pass the value through, and the first sequencing frame yields a
// Computation step for the trampoline. Iterative: consumes no native stack
// proportional to chain length.
func (k *MetaCont) Apply(v Erased) Result {
	for cur := k; cur != nil; cur = cur.tail {
		switch f := cur.head.(type) {
		case *TransformFrame:
			v = f.F(v)
		case *PromptFrame:
			// Region discharged; the value flows outward unchanged.
		case *SeqFrame:
			return Computation(f.F(v), cur.tail)
		default:
			panic("delim: unknown frame type in chain")
		}
	}
	return Done(v)
}

// Append concatenates two chains: the receiver's frames run first, then
// other's. Returns the other operand when either side is empty (the
// identity element for chain composition). Neither input is mutated; the
// result shares other's structure and copies the receiver's spine.
func (k *MetaCont) Append(other *MetaCont) *MetaCont {
	if k == nil {
		return other
	}
	if other == nil {
		return k
	}
	frames := make([]Frame, 0, k.Len())
	for cur := k; cur != nil; cur = cur.tail {
		frames = append(frames, cur.head)
	}
	out := other
	for i := len(frames) - 1; i >= 0; i-- {
		out = &MetaCont{head: frames[i], tail: out}
	}
	return out
}

// SplitAt divides a chain at prompt p's frame. It returns the captured
// prefix init (every frame before the marker; the marker itself is
// consumed), the context tail beyond the region, and ok reporting whether
// p's frame was present. The source chain is unchanged.
//
// ok == false means p is not delimiting this continuation — for [Shift0]
// that is a contract violation, surfaced as a panic at the capture site.
func SplitAt[R any](k *MetaCont, p *Prompt[R]) (init, tail *MetaCont, ok bool) {
	var prefix []Frame
	for cur := k; cur != nil; cur = cur.tail {
		if pf, hit := cur.head.(*PromptFrame); hit && pf.ID == p.id {
			for i := len(prefix) - 1; i >= 0; i-- {
				init = &MetaCont{head: prefix[i], tail: init}
			}
			return init, cur.tail, true
		}
		prefix = append(prefix, cur.head)
	}
	return nil, nil, false
}
