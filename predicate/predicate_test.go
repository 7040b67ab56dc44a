package predicate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-typekit/predicate"
)

func isEven(n int) bool { return n%2 == 0 }

func TestNot(t *testing.T) {
	isOdd := predicate.Not(isEven)
	for n := -5; n <= 5; n++ {
		assert.Equal(t, !isEven(n), isOdd(n), "n=%d", n)
	}
}

func TestNotCallsPredicateOnce(t *testing.T) {
	calls := 0
	p := predicate.Not(func(s string) bool {
		calls++
		return s == ""
	})
	assert.True(t, p("x"))
	assert.False(t, p(""))
	assert.Equal(t, 2, calls)
}

// counter answers the same question for several argument shapes, the way an
// overloaded call operator would.
type counter struct{ limit int }

func (c counter) Int(n int) bool { return n < c.limit }
func (c counter) Text(s string) bool { return len(s) < c.limit }
func (c counter) Slice(xs []float64) bool { return len(xs) < c.limit }

func TestNotAcrossArgumentTypes(t *testing.T) {
	c := counter{limit: 3}

	notInt := predicate.Not(c.Int)
	notString := predicate.Not(c.Text)
	notSlice := predicate.Not(c.Slice)

	for _, n := range []int{0, 2, 3, 10} {
		assert.Equal(t, !c.Int(n), notInt(n))
	}
	for _, s := range []string{"", "ab", "abc", "abcdef"} {
		assert.Equal(t, !c.Text(s), notString(s))
	}
	for _, xs := range [][]float64{nil, {1}, {1, 2, 3}} {
		assert.Equal(t, !c.Slice(xs), notSlice(xs))
	}
}

func TestNot2(t *testing.T) {
	differ := predicate.Not2(strings.EqualFold)
	assert.False(t, differ("Go", "GO"))
	assert.True(t, differ("Go", "Rust"))
}

func TestNotN(t *testing.T) {
	allPositive := func(ns ...int) bool {
		for _, n := range ns {
			if n <= 0 {
				return false
			}
		}
		return true
	}
	someNonPositive := predicate.NotN(allPositive)
	assert.False(t, someNonPositive())
	assert.False(t, someNonPositive(1, 2, 3))
	assert.True(t, someNonPositive(1, -2, 3))
}

type verdict bool

func TestNotAs(t *testing.T) {
	guilty := func(n int) verdict { return n > 10 }
	innocent := predicate.NotAs(guilty)
	var v verdict = innocent(3)
	assert.Equal(t, verdict(true), v)
	assert.Equal(t, verdict(false), innocent(11))
}

type isBlank func(string) bool

func TestNegateKeepsNamedType(t *testing.T) {
	var blank isBlank = func(s string) bool { return strings.TrimSpace(s) == "" }
	var present isBlank = predicate.Negate(blank)
	assert.True(t, present("x"))
	assert.False(t, present("  "))
}

func TestFunc(t *testing.T) {
	even := predicate.Func[int](isEven)
	positive := func(n int) bool { return n > 0 }

	assert.True(t, even.Test(4))
	assert.True(t, even.Not().Test(3))
	assert.True(t, even.And(positive).Test(4))
	assert.False(t, even.And(positive).Test(-4))
	assert.True(t, even.Or(positive).Test(3))
	assert.False(t, even.Or(positive).Test(-3))
	assert.True(t, even.And().Test(2))
	assert.False(t, even.Or().Test(1))
}

func TestFuncAndShortCircuits(t *testing.T) {
	called := false
	spy := func(int) bool { called = true; return true }
	assert.False(t, predicate.Func[int](isEven).And(spy)(1))
	assert.False(t, called)
	assert.True(t, predicate.Func[int](isEven).Or(spy)(2))
	assert.False(t, called)
}
