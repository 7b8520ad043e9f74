package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRangeStaysInBounds(t *testing.T) {
	r := NewRNG(5)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := r.IntRange(1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.Less(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestIntRangeEmptyReturnsLow(t *testing.T) {
	r := NewRNG(1)
	assert.Equal(t, 7, r.IntRange(7, 7))
	assert.Equal(t, 7, r.IntRange(7, 2))
}

func TestIntRangeDeterministic(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
}
