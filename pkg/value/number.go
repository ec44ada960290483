package value

import (
	"math"
	"strconv"
)

type Number float64

func (n Number) Kind() Kind {
	return NumberKind
}

// NativeValue returns nil for NaN and the infinities, which have no JSON
// representation.
func (n Number) NativeValue() (any, bool, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, true, nil
	}
	return f, true, nil
}

// String formats the number in plain decimal notation without an exponent,
// so 17 prints as "17" and 0.5 as "0.5".
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToInt returns the number as an integer index. Only integral values that fit
// in an int64 convert.
func (n Number) ToInt() (int64, bool) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
