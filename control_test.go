// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delim_test

import (
	"testing"

	"code.hybscloud.com/delim"
)

// Pure / Delay / basic combinator tests

func TestPureRoundTrip(t *testing.T) {
	got, err := delim.Run(delim.Pure(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestPureRoundTripString(t *testing.T) {
	got, err := delim.Run(delim.Pure("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestPureRoundTripStruct(t *testing.T) {
	type pair struct{ a, b int }
	got, err := delim.Run(delim.Pure(pair{1, 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (pair{1, 2}) {
		t.Fatalf("got %+v, want {1 2}", got)
	}
}

func TestRunNilResult(t *testing.T) {
	got, err := delim.Run(delim.Pure[any](nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestDelayDefersEvaluation(t *testing.T) {
	evaluated := false
	m := delim.Delay(func() int {
		evaluated = true
		return 7
	})
	if evaluated {
		t.Fatal("thunk ran at construction time")
	}
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if !evaluated {
		t.Fatal("thunk never ran")
	}
}

func TestMapOnDelayStaysDeferred(t *testing.T) {
	evaluated := false
	m := delim.Map(delim.Delay(func() int {
		evaluated = true
		return 10
	}), func(x int) int { return x + 1 })
	if evaluated {
		t.Fatal("thunk ran before the result was observed")
	}
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestMapTransformsResult(t *testing.T) {
	got, err := delim.Run(delim.Map(delim.Pure(21), func(x int) int { return x * 2 }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMapChangesType(t *testing.T) {
	got, err := delim.Run(delim.Map(delim.Pure(3), func(x int) string {
		return string(rune('a' + x))
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "d" {
		t.Fatalf("got %q, want %q", got, "d")
	}
}

func TestBindSequences(t *testing.T) {
	m := delim.Bind(delim.Pure(5), func(x int) delim.Control[int] {
		return delim.Pure(x * 3)
	})
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}

func TestThenDiscardsFirstResult(t *testing.T) {
	ran := false
	m := delim.Then(
		delim.Delay(func() int { ran = true; return 1 }),
		delim.Pure("second"),
	)
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
	if !ran {
		t.Fatal("first computation never ran")
	}
}

func TestFilterPassesMatchingValue(t *testing.T) {
	m := delim.Filter(delim.Pure(8), func(x int) bool { return x%2 == 0 })
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestFilterRejectsNonMatchingValue(t *testing.T) {
	m := delim.Filter(delim.Pure(7), func(x int) bool { return x%2 == 0 })
	_, err := delim.Run(m)
	if err == nil {
		t.Fatal("expected a failure for the rejected value")
	}
}

func TestBindMapChain(t *testing.T) {
	m := delim.Bind(delim.Pure(2), func(x int) delim.Control[int] {
		return delim.Map(delim.Pure(x+3), func(y int) int { return y * y })
	})
	got, err := delim.Run(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
}
