// Package sample provides unit tests for index sampling.
package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandUniformIndexBounds tests that draws stay inside [low, high).
func TestRandUniformIndexBounds(t *testing.T) {
	s := NewSeeded(1)

	for i := 0; i < 10000; i++ {
		idx := s.UniformIndex(3, 10)
		assert.GreaterOrEqual(t, idx, 3)
		assert.Less(t, idx, 10)
	}
}

// TestRandUniformIndexSingleton tests the one-element range.
func TestRandUniformIndexSingleton(t *testing.T) {
	s := NewSeeded(1)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 5, s.UniformIndex(5, 6))
	}
}

// TestRandSeededDeterminism tests that equal seeds give equal sequences.
func TestRandSeededDeterminism(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.UniformIndex(0, 100), b.UniformIndex(0, 100))
	}
}

// TestRandCoversRange tests that every index is eventually drawn.
func TestRandCoversRange(t *testing.T) {
	s := NewSeeded(7)
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		seen[s.UniformIndex(0, 8)] = true
	}
	assert.Len(t, seen, 8)
}

// TestSequenceReplaysAndCycles tests the deterministic sequence sampler.
func TestSequenceReplaysAndCycles(t *testing.T) {
	s := &Sequence{Indices: []int{2, 0, 1}}

	got := make([]int, 6)
	for i := range got {
		got[i] = s.UniformIndex(0, 3)
	}
	assert.Equal(t, []int{2, 0, 1, 2, 0, 1}, got)
}

// TestSequenceClampsOutOfRange tests clamping into [low, high).
func TestSequenceClampsOutOfRange(t *testing.T) {
	s := &Sequence{Indices: []int{-1, 99}}

	assert.Equal(t, 0, s.UniformIndex(0, 4))
	assert.Equal(t, 3, s.UniformIndex(0, 4))
}
