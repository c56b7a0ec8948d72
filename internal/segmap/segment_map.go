// Package segmap holds a piecewise-constant function over the real line as an
// ordered list of breakpoints. The function is 0 everywhere before the first
// breakpoint, and each breakpoint's value holds until the next one.
package segmap

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

type Map[N Number] interface {
	// Add |amount| to the function over [from, to). No-op unless from < to.
	Add(from, to, amount N)
	// Set the function to |amount| over [from, to). No-op unless from < to.
	Set(from, to, amount N)

	Len() int
	Breakpoints() []Breakpoint[N]
	Iterate(iter func(Breakpoint[N]) bool)

	String() string
	Validate()
}

// The function equals Value on [Position, next.Position).
type Breakpoint[N Number] struct {
	Position N
	Value    N
}

// Equal reports whether both maps hold the same breakpoints.
func Equal[N Number](a, b Map[N]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.Equal(a.Breakpoints(), b.Breakpoints())
}

// canonical folds -0 onto +0 so that float zeros compare, key and print the
// same way.
func canonical[N Number](v N) N {
	if v == 0 {
		return 0
	}
	return v
}

func render[N Number](m Map[N]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	m.Iterate(func(b Breakpoint[N]) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "[%v, %v]", b.Position, b.Value)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

func validate[N Number](m Map[N]) {
	var prev Breakpoint[N]
	i := 0
	m.Iterate(func(b Breakpoint[N]) bool {
		if i > 0 && !(prev.Position < b.Position) {
			log.Panicf("breakpoint %d: position %v not after %v", i, b.Position, prev.Position)
		}
		// Before the first breakpoint the function is an implicit 0.
		if b.Value == prev.Value {
			log.Panicf("breakpoint %d at %v: redundant value %v", i, b.Position, b.Value)
		}
		prev = b
		i++
		return true
	})
	if i != m.Len() {
		log.Panicf("iterated %d breakpoints, Len() %d", i, m.Len())
	}
}

// valueAt returns the function's value at |x|.
func valueAt[N Number](m Map[N], x N) N {
	var v N
	m.Iterate(func(b Breakpoint[N]) bool {
		if b.Position > x {
			return false
		}
		v = b.Value
		return true
	})
	return v
}
