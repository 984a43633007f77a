// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim

// Reset installs a new delimited region. It mints a fresh [Prompt],
// evaluates the region body parameterized over it, and hands control to
// the body under a prompt frame marking the boundary.
//
// The prompt is minted per activation: applying the returned computation
// twice — directly or through a multi-shot replay — yields two distinct
// prompts, so nested and recursive regions never alias. The prompt is a
// value, not a lexical construct: regions can be stored, passed around,
// and targeted dynamically, which is what makes the encoding multi-prompt.
//
// A region that never invokes [Shift0] is transparent: its body's value
// becomes the value of the whole Reset expression.
func Reset[R any](region func(p *Prompt[R]) Control[R]) Control[R] {
	return Control[R]{body: func(k *MetaCont) Result {
		p := newPrompt[R]()
		return Computation(erase(region(p)), k.Push(&PromptFrame{ID: p.id}))
	}}
}
