// Package tolerance defines the numeric comparison policy shared by every
// solver in this module.
//
// All push, relabel and cut decisions compare flow quantities through a
// Tolerance instead of raw operators, so floating capacities can be treated
// with an epsilon while integer capacities stay exact:
//
//	Positive(v)   eps < v
//	Negative(v)   v < -eps
//	Less(a, b)    a + eps < b
//
// Default epsilons:
//
//	float64  1e-10
//	float32  1e-4
//	integers 0
//
// Each numeric type also has an Infinity sentinel: +Inf for floats and the
// largest representable value for integers. Add and Sub saturate at it, so
// an unbounded capacity stays unbounded and never wraps around. Debit
// saturates the other way, at the Floor: -Infinity for signed and floating
// types, zero for unsigned ones.
package tolerance

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Value is the numeric domain of capacities and flows.
type Value interface {
	constraints.Integer | constraints.Float
}

// Default epsilons, by floating kind.
const (
	DefaultEpsilon64 = 1e-10
	DefaultEpsilon32 = 1e-4
)

// Tolerance compares values of V against a fixed epsilon.
// The zero value is not usable; build one with Default or New.
type Tolerance[V Value] struct {
	eps   V
	inf   V
	floor V
}

// Default returns the tolerance for V with the default epsilon of its kind.
func Default[V Value]() Tolerance[V] {
	switch kindOf[V]() {
	case reflect.Float64:
		return New[V](DefaultEpsilon64)
	case reflect.Float32:
		return New[V](DefaultEpsilon32)
	default:
		return New[V](0)
	}
}

// New returns a tolerance with the given epsilon. For integer V the epsilon
// is truncated toward zero; negative values are treated as zero.
func New[V Value](eps float64) Tolerance[V] {
	if eps < 0 || math.IsNaN(eps) {
		eps = 0
	}

	t := Tolerance[V]{eps: V(eps), inf: Infinity[V]()}
	var zero V
	if zero-1 < zero {
		t.floor = -t.inf
	}

	return t
}

// IsFloat reports whether V is a floating-point type.
func IsFloat[V Value]() bool {
	k := kindOf[V]()
	return k == reflect.Float32 || k == reflect.Float64
}

// Epsilon returns the comparison slack.
func (t Tolerance[V]) Epsilon() V { return t.eps }

// Infinity returns the unbounded sentinel carried by t.
func (t Tolerance[V]) Infinity() V { return t.inf }

// Positive reports v > eps.
func (t Tolerance[V]) Positive(v V) bool { return t.eps < v }

// Negative reports v < -eps.
func (t Tolerance[V]) Negative(v V) bool { return v < 0 && t.eps < -v }

// NonZero reports |v| > eps.
func (t Tolerance[V]) NonZero(v V) bool { return t.Positive(v) || t.Negative(v) }

// Less reports a + eps < b. An infinite a is never less than anything.
func (t Tolerance[V]) Less(a, b V) bool {
	if t.IsInfinite(a) {
		return false
	}

	return t.Add(a, t.eps) < b
}

// Different reports whether a and b differ by more than eps.
func (t Tolerance[V]) Different(a, b V) bool { return t.Less(a, b) || t.Less(b, a) }

// Floor returns the lower saturation bound of Debit.
func (t Tolerance[V]) Floor() V { return t.floor }

// IsInfinite reports whether v is at or beyond the Infinity sentinel.
func (t Tolerance[V]) IsInfinite(v V) bool { return v >= t.inf }

// atFloor reports whether a signed accumulator has hit the Floor.
func (t Tolerance[V]) atFloor(v V) bool { return t.floor < 0 && v <= t.floor }

// Add returns a + b, saturating at Infinity. An accumulator a that sits on
// a negative Floor stays there.
func (t Tolerance[V]) Add(a, b V) V {
	if t.atFloor(a) {
		return t.floor
	}
	if t.IsInfinite(a) || t.IsInfinite(b) {
		return t.inf
	}
	if b > 0 && a > t.inf-b {
		return t.inf
	}
	if b < 0 && a < t.floor-b {
		return t.floor
	}

	return a + b
}

// Debit returns a - b for b >= 0, saturating at the Floor. Debiting an
// infinite amount, or debiting an accumulator already on the Floor, yields
// the Floor.
func (t Tolerance[V]) Debit(a, b V) V {
	if a <= t.floor || t.IsInfinite(b) {
		return t.floor
	}
	if a < t.floor+b {
		return t.floor
	}

	return a - b
}

// Sub returns a - b. Infinity minus any finite value stays Infinity, which
// keeps the residual of an unbounded arc unbounded.
func (t Tolerance[V]) Sub(a, b V) V {
	if t.IsInfinite(a) && !t.IsInfinite(b) {
		return t.inf
	}

	return a - b
}

// Min returns the smaller of a and b.
func (t Tolerance[V]) Min(a, b V) V {
	if b < a {
		return b
	}

	return a
}

// Infinity returns the unbounded sentinel for V: +Inf for floats, the
// maximum representable value for integers.
func Infinity[V Value]() V {
	var zero V
	rv := reflect.New(reflect.TypeOf(zero)).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(uint64(1)<<(rv.Type().Bits()-1) - 1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(^uint64(0) >> (64 - rv.Type().Bits()))
	}

	return rv.Interface().(V)
}

// kindOf resolves the underlying kind of V, so named numeric types
// (type Capacity float64) pick the same defaults as their base type.
func kindOf[V Value]() reflect.Kind {
	var zero V
	return reflect.TypeOf(zero).Kind()
}
