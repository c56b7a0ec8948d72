package segmap

import (
	"log"
	"math"

	"github.com/akmistry/go-util/radix-tree"
)

var _ = (Map[int])((*TreeMap[int])(nil))

type treeItem[N Number] struct {
	key uint64
	Breakpoint[N]
}

func (i *treeItem[N]) Key() uint64 {
	return i.key
}

// TreeMap keeps breakpoints in a radix tree keyed by sortKey(position). The
// zero value is an empty map.
type TreeMap[N Number] struct {
	tree  radix.Tree
	count int
}

func NewTreeMap[N Number]() *TreeMap[N] {
	return &TreeMap[N]{}
}

func (m *TreeMap[N]) Len() int {
	return m.count
}

// Ensure a breakpoint exists at |pos|, inheriting the value in effect just
// before it. The function itself is unchanged.
func (m *TreeMap[N]) ensureBoundary(pos N) *treeItem[N] {
	key := sortKey(pos)
	var prev *treeItem[N]
	m.tree.DescendLessOrEqualI(key, func(i radix.Item) bool {
		prev = i.(*treeItem[N])
		return false
	})
	if prev != nil && prev.key == key {
		return prev
	}

	item := &treeItem[N]{
		key:        key,
		Breakpoint: Breakpoint[N]{Position: pos},
	}
	if prev != nil {
		item.Value = prev.Value
	}
	old := m.tree.ReplaceOrInsert(item)
	if old != nil {
		log.Panicf("unexpected old entry: %+v, adding new entry: %+v", old, item)
	}
	m.count++
	return item
}

func (m *TreeMap[N]) apply(from, to N, fn func(N) N) {
	if !(from < to) {
		return
	}
	from, to = canonical(from), canonical(to)

	m.ensureBoundary(from)
	m.ensureBoundary(to)

	lo, hi := sortKey(from), sortKey(to)
	m.tree.AscendGreaterOrEqualI(lo, func(i radix.Item) bool {
		ie := i.(*treeItem[N])
		if ie.key >= hi {
			return false
		}
		ie.Value = canonical(fn(ie.Value))
		return true
	})

	// Only breakpoints in [from, to] can have become redundant.
	m.normalizeRange(lo, hi)
}

func (m *TreeMap[N]) Add(from, to, amount N) {
	m.apply(from, to, func(v N) N {
		return v + amount
	})
}

func (m *TreeMap[N]) Set(from, to, amount N) {
	m.apply(from, to, func(N) N {
		return amount
	})
}

func (m *TreeMap[N]) normalize() {
	m.normalizeRange(0, math.MaxUint64)
}

// Remove every breakpoint with key in [lo, hi] whose value repeats the one
// before it.
func (m *TreeMap[N]) normalizeRange(lo, hi uint64) {
	var prevValue N
	if lo > 0 {
		m.tree.DescendLessOrEqualI(lo-1, func(i radix.Item) bool {
			prevValue = i.(*treeItem[N]).Value
			return false
		})
	}

	var redundant []*treeItem[N]
	m.tree.AscendGreaterOrEqualI(lo, func(i radix.Item) bool {
		ie := i.(*treeItem[N])
		if ie.key > hi {
			return false
		}
		if ie.Value == prevValue {
			redundant = append(redundant, ie)
		} else {
			prevValue = ie.Value
		}
		return true
	})

	for _, ie := range redundant {
		if m.tree.Delete(ie) != ie {
			log.Panicf("item not deleted: %+v", ie)
		}
		m.count--
	}
}

func (m *TreeMap[N]) Iterate(iter func(Breakpoint[N]) bool) {
	m.tree.Ascend(func(i radix.Item) bool {
		return iter(i.(*treeItem[N]).Breakpoint)
	})
}

func (m *TreeMap[N]) Breakpoints() []Breakpoint[N] {
	if m.count == 0 {
		return nil
	}
	points := make([]Breakpoint[N], 0, m.count)
	m.Iterate(func(b Breakpoint[N]) bool {
		points = append(points, b)
		return true
	})
	return points
}

func (m *TreeMap[N]) String() string {
	return render[N](m)
}

func (m *TreeMap[N]) Validate() {
	validate[N](m)
}
