package segmap

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ = (Map[int])((*SliceMap[int])(nil))

// SliceMap keeps breakpoints in a sorted slice. The zero value is an empty
// map.
type SliceMap[N Number] struct {
	points []Breakpoint[N]

	// Indices of redundant breakpoints found by normalize.
	redundant bitset.BitSet
}

func NewSliceMap[N Number]() *SliceMap[N] {
	return &SliceMap[N]{}
}

func (m *SliceMap[N]) Len() int {
	return len(m.points)
}

func (m *SliceMap[N]) search(pos N) (int, bool) {
	return slices.BinarySearchFunc(m.points, pos, func(b Breakpoint[N], p N) int {
		return cmp.Compare(b.Position, p)
	})
}

func (m *SliceMap[N]) ensureBoundary(pos N) int {
	i, found := m.search(pos)
	if found {
		return i
	}
	var v N
	if i > 0 {
		v = m.points[i-1].Value
	}
	m.points = slices.Insert(m.points, i, Breakpoint[N]{Position: pos, Value: v})
	return i
}

func (m *SliceMap[N]) apply(from, to N, fn func(N) N) {
	if !(from < to) {
		return
	}
	from, to = canonical(from), canonical(to)

	// |to| sorts after |from|, so inserting it leaves |start| in place.
	start := m.ensureBoundary(from)
	end := m.ensureBoundary(to)
	for i := start; i < end; i++ {
		m.points[i].Value = canonical(fn(m.points[i].Value))
	}
	m.normalize()
}

func (m *SliceMap[N]) Add(from, to, amount N) {
	m.apply(from, to, func(v N) N {
		return v + amount
	})
}

func (m *SliceMap[N]) Set(from, to, amount N) {
	m.apply(from, to, func(N) N {
		return amount
	})
}

func (m *SliceMap[N]) normalize() {
	m.redundant.ClearAll()
	var prevValue N
	for i, b := range m.points {
		if b.Value == prevValue {
			m.redundant.Set(uint(i))
		} else {
			prevValue = b.Value
		}
	}
	if m.redundant.None() {
		return
	}

	kept := m.points[:0]
	for i, b := range m.points {
		if !m.redundant.Test(uint(i)) {
			kept = append(kept, b)
		}
	}
	clear(m.points[len(kept):])
	m.points = kept
	if len(m.points) == 0 {
		m.points = nil
	}
}

func (m *SliceMap[N]) Iterate(iter func(Breakpoint[N]) bool) {
	for _, b := range m.points {
		if !iter(b) {
			return
		}
	}
}

func (m *SliceMap[N]) Breakpoints() []Breakpoint[N] {
	if len(m.points) == 0 {
		return nil
	}
	return slices.Clone(m.points)
}

func (m *SliceMap[N]) String() string {
	return render[N](m)
}

func (m *SliceMap[N]) Validate() {
	validate[N](m)
}
