package natsort

import (
	"cmp"
	"math"
	"strconv"
)

// Number is a parsed numeric value. Integer-parsed numbers keep their int64
// value; float-parsed numbers keep their float64 value. Numbers of different
// representations compare by value.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// IntNumber returns an integer Number.
func IntNumber(i int64) Number {
	return Number{isInt: true, i: i}
}

// FloatNumber returns a floating-point Number.
func FloatNumber(f float64) Number {
	return Number{f: f}
}

// IsInt reports whether the number holds an integer representation.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the value truncated to int64.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value as float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Compare returns -1, 0 or +1. NaN sorts before any other number and
// compares equal to NaN.
func (n Number) Compare(o Number) int {
	switch {
	case n.isInt && o.isInt:
		return cmp.Compare(n.i, o.i)
	case n.isInt:
		return -compareFloatInt(o.f, n.i)
	case o.isInt:
		return compareFloatInt(n.f, o.i)
	}
	return cmp.Compare(n.f, o.f)
}

// compareFloatInt compares f with i exactly; i is never rounded to float64.
func compareFloatInt(f float64, i int64) int {
	switch {
	case math.IsNaN(f), f < math.MinInt64:
		return -1
	case f >= math.MaxInt64:
		// float64(MaxInt64) rounds up to 2^63, which is out of range
		return 1
	}
	whole := math.Trunc(f)
	if c := cmp.Compare(int64(whole), i); c != 0 {
		return c
	}
	return cmp.Compare(f, whole)
}

func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
