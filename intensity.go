// Package intensity tracks an intensity over the real line as a step
// function. Intensity is 0 everywhere until changed with Add or Set, and the
// current function is rendered as its list of breakpoints:
//
//	s := intensity.New()
//	s.Add(10, 30, 1)
//	s.Add(20, 40, 1)
//	s.String() // [[10, 1], [20, 2], [30, 1], [40, 0]]
//
// Ranges are half-open, [from, to). A range with from >= to is ignored.
// Segments are not safe for concurrent use.
package intensity

import (
	"github.com/akmistry/intensity/internal/segmap"
)

type (
	Segments   = segmap.TreeMap[float64]
	Breakpoint = segmap.Breakpoint[float64]
)

func New() *Segments {
	return segmap.NewTreeMap[float64]()
}

// NewOf returns an empty map over any integer or float scalar type.
func NewOf[N segmap.Number]() segmap.Map[N] {
	return segmap.NewTreeMap[N]()
}
