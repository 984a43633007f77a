// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

import (
	"strconv"
	"sync/atomic"
)

// promptID is the global mint for prompt identities.
var promptID atomic.Uint64

// Prompt is the unique, unforgeable marker identifying one delimited
// region. A fresh prompt is minted per [Reset] activation; only code
// holding the prompt may target its region with [Shift0].
//
// Identity is allocation identity, carried as a monotonically increasing
// id so that two prompts are never conflated. The type parameter R is the
// region's answer type; it has no runtime representation beyond tying
// Shift0 call sites to the right region at compile time.
//
// A prompt is logically retired once its frame is discharged; targeting it
// afterwards is a programming error, not a recoverable condition.
type Prompt[R any] struct {
	id uint64
}

// newPrompt mints a prompt with a process-unique identity.
func newPrompt[R any]() *Prompt[R] {
	return &Prompt[R]{id: promptID.Add(1)}
}

// String returns a diagnostic name for the prompt.
func (p *Prompt[R]) String() string {
	return "prompt#" + strconv.FormatUint(p.id, 10)
}
