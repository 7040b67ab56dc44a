package traits

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Equatable is satisfied by every type for which == and != are defined.
type Equatable interface {
	comparable
}

// Ordered is satisfied by every type for which < and > are defined.
type Ordered interface {
	constraints.Ordered
}

// Equaler is the named equality capability for types whose == is missing or
// not meaningful.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Comparer is the named ordering capability. Compare returns a negative
// number when the receiver sorts before other, zero when they are equal and
// a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// ─────────────────────────────────────────────────────────────────────────────
// Capability predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsEqualityComparable reports whether values of T can be tested for
// equality, either with == and != or through [Equaler].
//
// Interface types report true because the language accepts == on them;
// comparing two interface values whose dynamic type is not comparable still
// fails, which [Equal] reports as an error.
func IsEqualityComparable[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Comparable() || implements[Equaler[T]](t)
}

// IsComparable reports whether values of T can be ordered, either with <
// and > or through [Comparer].
func IsComparable[T any]() bool {
	t := reflect.TypeFor[T]()
	return isOrderedKind(t.Kind()) || implements[Comparer[T]](t)
}

func implements[I any](t reflect.Type) bool {
	return t.Implements(reflect.TypeFor[I]())
}

func isOrderedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b are equal. [Equaler] takes precedence over
// ==. It returns [ErrNotEqualityComparable] when neither applies.
func Equal[T any](a, b T) (bool, error) {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b), nil
	}
	va, vb := any(a), any(b)
	if !reflect.TypeFor[T]().Comparable() || !dynamicallyComparable(va) || !dynamicallyComparable(vb) {
		return false, fmt.Errorf("%w: %s", ErrNotEqualityComparable, typeName[T]())
	}
	return va == vb, nil
}

// Compare orders a and b: -1 if a < b, 0 if equal, +1 if a > b. [Comparer]
// takes precedence over the built-in operators. NaN sorts before every
// other float, as in [cmp.Compare]. It returns [ErrNotComparable] when
// neither applies.
func Compare[T any](a, b T) (int, error) {
	if c, ok := any(a).(Comparer[T]); ok {
		return cmp.Compare(c.Compare(b), 0), nil
	}
	va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	switch k := va.Kind(); {
	case k >= reflect.Int && k <= reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case k >= reflect.Uint && k <= reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case k == reflect.Float32 || k == reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), nil
	case k == reflect.String:
		return cmp.Compare(va.String(), vb.String()), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotComparable, typeName[T]())
}

// Less reports whether a sorts before b under the rules of [Compare].
func Less[T any](a, b T) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

func dynamicallyComparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
