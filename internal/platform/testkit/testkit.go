// Package testkit holds assertion and seam helpers shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// excerpt bounds how much of a haystack MustContain prints
const excerpt = 2048

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless haystack contains needle
// long haystacks such as captured logs or response bodies are cut to their head
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > excerpt {
		shown = shown[:excerpt] + "..."
	}
	t.Fatalf("expected %q in:\n%s", needle, shown)
}
