package segmap

import (
	"math"
	"reflect"
)

const signBit = 1 << 63

func isFloat[N Number]() bool {
	switch reflect.TypeOf((*N)(nil)).Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// sortKey maps a position onto a uint64 with the same ordering, so positions
// can be used as radix tree keys. NaN has no place in the ordering and must
// never be passed in.
func sortKey[N Number](p N) uint64 {
	if isFloat[N]() {
		f := float64(p)
		if f == 0 {
			// -0 and +0 are the same position.
			f = 0
		}
		bits := math.Float64bits(f)
		if bits&signBit != 0 {
			return ^bits
		}
		return bits | signBit
	}
	return uint64(int64(p)) ^ signBit
}
