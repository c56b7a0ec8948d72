package segmap

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkSortKeyOrder[N Number](t *testing.T, sorted []N) {
	t.Helper()
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		ka, kb := sortKey(a), sortKey(b)
		switch {
		case a < b && !(ka < kb):
			t.Errorf("sortKey(%v) %x !< sortKey(%v) %x", a, ka, b, kb)
		case a == b && ka != kb:
			t.Errorf("sortKey(%v) %x != sortKey(%v) %x", a, ka, b, kb)
		}
	}
}

func TestSortKey_Int(t *testing.T) {
	values := []int64{math.MinInt64, math.MinInt64 + 1, -1000, -1, 0, 1, 1000, math.MaxInt64 - 1, math.MaxInt64}
	for i := 0; i < 1000; i++ {
		values = append(values, rand.Int63()-rand.Int63())
	}
	slices.Sort(values)
	checkSortKeyOrder(t, values)

	checkSortKeyOrder(t, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8})
}

func TestSortKey_Float(t *testing.T) {
	values := []float64{
		math.Inf(-1), -math.MaxFloat64, -1e10, -1, -math.SmallestNonzeroFloat64,
		math.Copysign(0, -1), 0, math.SmallestNonzeroFloat64, 0.5, 1, 1e10,
		math.MaxFloat64, math.Inf(1),
	}
	for i := 0; i < 1000; i++ {
		values = append(values, (rand.Float64()-0.5)*1e6)
	}
	slices.Sort(values)
	checkSortKeyOrder(t, values)

	assert.Equal(t, sortKey(0.0), sortKey(math.Copysign(0, -1)))
	assert.Equal(t, sortKey(float32(0.25)), sortKey(float32(0.25)))
	assert.Less(t, sortKey(float32(-0.25)), sortKey(float32(0.25)))
}

func TestIsFloat(t *testing.T) {
	type weight float32

	assert.True(t, isFloat[float64]())
	assert.True(t, isFloat[weight]())
	assert.False(t, isFloat[int]())
	assert.False(t, isFloat[int16]())
}
