// Package testutil provides testing utilities for rapbattle tests.
package testutil

import (
	"testing"
)

// ScriptedSource is a random source that replays a fixed list of draws.
// It fails the test if it runs out of draws or if a draw is outside [0, n).
type ScriptedSource struct {
	t     testing.TB
	draws []int
	pos   int
}

// NewScriptedSource returns a source that yields draws in order.
func NewScriptedSource(t testing.TB, draws ...int) *ScriptedSource {
	t.Helper()
	return &ScriptedSource{t: t, draws: draws}
}

// IntN returns the next scripted draw.
func (s *ScriptedSource) IntN(n int) int {
	s.t.Helper()

	if s.pos >= len(s.draws) {
		s.t.Fatalf("scripted source exhausted after %d draws (IntN(%d) requested)", len(s.draws), n)
		return 0
	}
	v := s.draws[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("scripted draw %d is %d, outside [0, %d)", s.pos-1, v, n)
	}
	return v
}

// Used returns how many draws have been consumed.
func (s *ScriptedSource) Used() int {
	return s.pos
}

// Remaining returns how many scripted draws are left.
func (s *ScriptedSource) Remaining() int {
	return len(s.draws) - s.pos
}

// ConstSource always returns the same draw, reduced modulo n.
type ConstSource int

// IntN returns the constant draw modulo n.
func (c ConstSource) IntN(n int) int {
	return int(c) % n
}
