// Copyright (C) 2024-2025 the go-exposure authors.
// This file is part of go-exposure
//
// go-exposure is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-exposure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-exposure.  If not, see <https://www.gnu.org/licenses/>.

// Package rational implements an exact signed rational number over int64
// components, plus best-rational approximation of a float64 within a caller
// supplied tolerance.
//
// Values are immutable: every operation returns a new Rational and never
// mutates its receiver, so values may be freely shared across goroutines.
// Arithmetic results are left unreduced; equality, ordering and formatting
// reduce on demand, so 2/4 and 1/2 compare and render identically.
//
// Components are fixed-width int64. Arithmetic that would overflow reports
// ErrOverflow instead of wrapping; there is no promotion to big integers.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Errors reported by constructors and arithmetic.
var (
	ErrZeroDenominator  = errors.New("rational: zero denominator")
	ErrMalformedText    = errors.New("rational: malformed text")
	ErrOverflow         = errors.New("rational: int64 overflow")
	ErrNonFinite        = errors.New("rational: non-finite value")
	ErrInvalidTolerance = errors.New("rational: tolerance must be positive and finite")
)

// Rational is an exact ratio of two int64 components. The sign lives on the
// numerator and the stored denominator is always positive. The value may be
// internally unreduced.
//
// The zero value of Rational is invalid (zero denominator); obtain values
// from New, MustNew, Parse, FromFloat64 or arithmetic on valid values.
type Rational struct {
	num int64
	den int64
}

// New returns the rational num/den. It reports ErrZeroDenominator when den
// is zero. A negative denominator is normalized by negating both
// components; den of math.MinInt64 cannot be negated and reports
// ErrOverflow. No reduction is performed.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if den < 0 {
		if den == math.MinInt64 || num == math.MinInt64 {
			return Rational{}, ErrOverflow
		}
		num, den = -num, -den
	}
	return Rational{num: num, den: den}, nil
}

// MustNew is like New but panics on error. Intended for constants and
// tables where the components are known to be valid.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse converts text of the form "<int>/<int>" into a Rational. Anything
// other than exactly two base-10 int64 components separated by a single
// slash reports an error wrapping ErrMalformedText; a zero denominator is
// rejected by New.
func Parse(s string) (Rational, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 2 {
		return Rational{}, fmt.Errorf("%w: %q is not of the form <int>/<int>", ErrMalformedText, s)
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: numerator of %q: %v", ErrMalformedText, s, err)
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: denominator of %q: %v", ErrMalformedText, s, err)
	}
	return New(num, den)
}

// Num returns the (possibly unreduced) numerator.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the (possibly unreduced) denominator.
func (r Rational) Den() int64 {
	return r.den
}

// Reduce returns r in lowest terms. The receiver is unchanged.
func (r Rational) Reduce() Rational {
	g := GCD(abs64(r.num), uint64(r.den))
	return Rational{num: r.num / int64(g), den: r.den / int64(g)}
}

// Float64 returns the value of r as ordinary floating-point division.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String renders the canonical reduced form "<num>/<den>". Unreduced
// internal state is never exposed.
func (r Rational) String() string {
	t := r.Reduce()
	return fmt.Sprintf("%d/%d", t.num, t.den)
}

// Eq reports whether r and o represent the same value, comparing the
// reduced forms component-wise.
func (r Rational) Eq(o Rational) bool {
	a, b := r.Reduce(), o.Reduce()
	return a.num == b.num && a.den == b.den
}

// Cmp compares r and o exactly, returning -1, 0 or +1. Denominators are
// positive, so the sign of r-o is the sign of r.num*o.den - o.num*r.den;
// the cross products are compared as sign-magnitude 128-bit values so that
// large components cannot lose precision.
func (r Rational) Cmp(o Rational) int {
	lneg, lhi, llo := mul128(r.num, o.den)
	rneg, rhi, rlo := mul128(o.num, r.den)
	if lneg != rneg {
		if lneg {
			return -1
		}
		return 1
	}
	c := cmp128(lhi, llo, rhi, rlo)
	if lneg {
		return -c
	}
	return c
}

// Less reports whether r is strictly smaller than o.
func (r Rational) Less(o Rational) bool {
	return r.Cmp(o) < 0
}

// Add returns r+o, unreduced. Overflowing int64 reports ErrOverflow.
func (r Rational) Add(o Rational) (Rational, error) {
	ad, ok1 := omul64(r.num, o.den)
	cb, ok2 := omul64(o.num, r.den)
	num, ok3 := oadd64(ad, cb)
	den, ok4 := omul64(r.den, o.den)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Rational{}, ErrOverflow
	}
	return Rational{num: num, den: den}, nil
}

// Sub returns r-o, unreduced. Overflowing int64 reports ErrOverflow.
func (r Rational) Sub(o Rational) (Rational, error) {
	ad, ok1 := omul64(r.num, o.den)
	cb, ok2 := omul64(o.num, r.den)
	num, ok3 := osub64(ad, cb)
	den, ok4 := omul64(r.den, o.den)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Rational{}, ErrOverflow
	}
	return Rational{num: num, den: den}, nil
}

// Mul returns r*o, unreduced. Overflowing int64 reports ErrOverflow.
func (r Rational) Mul(o Rational) (Rational, error) {
	num, ok1 := omul64(r.num, o.num)
	den, ok2 := omul64(r.den, o.den)
	if !(ok1 && ok2) {
		return Rational{}, ErrOverflow
	}
	return Rational{num: num, den: den}, nil
}

// Div returns r/o, unreduced. The result is routed through New so that a
// divisor with a zero numerator reports ErrZeroDenominator, the same
// contract as construction. Overflowing int64 reports ErrOverflow.
func (r Rational) Div(o Rational) (Rational, error) {
	num, ok1 := omul64(r.num, o.den)
	den, ok2 := omul64(r.den, o.num)
	if !(ok1 && ok2) {
		return Rational{}, ErrOverflow
	}
	return New(num, den)
}

// FromFloat64 returns the best rational approximation of x within
// tolerance, searching the Stern-Brocot tree by mediant bisection.
//
// The integer part is split off first; a fractional remainder within
// tolerance of 0 or 1 short-circuits to an integer-valued result before
// the general search runs. The search terminates because every step
// strictly deepens the tree and the tolerance window has nonzero width.
//
// x must be finite and tolerance must be positive and finite; x must also
// have its integer part representable in int64. Component growth past
// int64 during the search reports ErrOverflow.
func FromFloat64(x, tolerance float64) (Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, ErrNonFinite
	}
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		return Rational{}, ErrInvalidTolerance
	}
	floor := math.Floor(x)
	if floor < math.MinInt64 || floor >= -math.MinInt64 {
		return Rational{}, ErrOverflow
	}
	n := int64(floor)
	frac := x - floor
	if frac < tolerance {
		return New(n, 1)
	}
	if 1-tolerance < frac {
		return New(n+1, 1)
	}

	lowerN, lowerD := int64(0), int64(1)
	upperN, upperD := int64(1), int64(1)
	for {
		midN, ok1 := oadd64(lowerN, upperN)
		midD, ok2 := oadd64(lowerD, upperD)
		if !(ok1 && ok2) {
			return Rational{}, ErrOverflow
		}
		switch lhs, rhs := float64(midD)*(frac+tolerance), float64(midN); {
		case lhs < rhs:
			// mediant above the window
			upperN, upperD = midN, midD
		case lhs > rhs && rhs < (frac-tolerance)*float64(midD):
			// mediant below the window
			lowerN, lowerD = midN, midD
		default:
			nd, ok1 := omul64(n, midD)
			num, ok2 := oadd64(nd, midN)
			if !(ok1 && ok2) {
				return Rational{}, ErrOverflow
			}
			return New(num, midD)
		}
	}
}

// abs64 returns |x| as a uint64, which is exact even for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// mul128 returns the sign-magnitude 128-bit product of a and b.
func mul128(a, b int64) (neg bool, hi, lo uint64) {
	neg = (a < 0) != (b < 0)
	hi, lo = bits.Mul64(abs64(a), abs64(b))
	if hi == 0 && lo == 0 {
		neg = false
	}
	return
}

func cmp128(ahi, alo, bhi, blo uint64) int {
	switch {
	case ahi != bhi:
		if ahi < bhi {
			return -1
		}
		return 1
	case alo != blo:
		if alo < blo {
			return -1
		}
		return 1
	default:
		return 0
	}
}
