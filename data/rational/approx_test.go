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

package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/exposurekit/go-exposure/test/partitiontest"
)

func TestFromFloat64Convergents(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := []struct {
		x    float64
		tol  float64
		want Rational
	}{
		{x: 3.1415926, tol: 0.01, want: MustNew(22, 7)},
		{x: math.Pi, tol: 0.00001, want: MustNew(355, 113)},
		{x: 0.5, tol: 0.01, want: MustNew(1, 2)},
		{x: 1.5, tol: 0.1, want: MustNew(3, 2)},
		{x: -1.5, tol: 0.25, want: MustNew(-3, 2)},
		{x: 0.3333, tol: 0.001, want: MustNew(1, 3)},
	}
	for _, tc := range cases {
		got, err := FromFloat64(tc.x, tc.tol)
		require.NoError(t, err, "x=%v tol=%v", tc.x, tc.tol)
		require.True(t, got.Eq(tc.want), "x=%v tol=%v: got %v, want %v", tc.x, tc.tol, got, tc.want)
	}
}

func TestFromFloat64IntegerShortcut(t *testing.T) {
	partitiontest.PartitionTest(t)

	got, err := FromFloat64(3.004, 0.01)
	require.NoError(t, err)
	require.Equal(t, MustNew(3, 1), got)

	got, err = FromFloat64(2.997, 0.01)
	require.NoError(t, err)
	require.Equal(t, MustNew(3, 1), got)

	got, err = FromFloat64(-4.0, 0.01)
	require.NoError(t, err)
	require.Equal(t, MustNew(-4, 1), got)

	got, err = FromFloat64(0, 0.5)
	require.NoError(t, err)
	require.Equal(t, MustNew(0, 1), got)
}

// The shortcut must win whenever the fractional remainder falls within
// tolerance of either integer neighbor, yielding a denominator of 1.
func TestFromFloat64BoundaryProperty(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Int64Range(-1_000_000, 1_000_000).Draw(rt, "n")
		tol := rapid.Float64Range(0.001, 0.4).Draw(rt, "tol")
		scale := rapid.Float64Range(0, 0.99).Draw(rt, "scale")

		frac := tol * scale
		if rapid.Bool().Draw(rt, "upper") {
			frac = 1 - frac
		}
		got, err := FromFloat64(float64(n)+frac, tol)
		require.NoError(t, err)
		require.Equal(t, int64(1), got.Den(), "n=%d frac=%v tol=%v got %v", n, frac, tol, got)
	})
}

// The mediant result must always land within tolerance of the input.
func TestFromFloat64WithinTolerance(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(rt, "x")
		tol := rapid.Float64Range(1e-6, 0.4).Draw(rt, "tol")
		got, err := FromFloat64(x, tol)
		require.NoError(t, err)
		require.InDelta(t, x, got.Float64(), tol, "x=%v tol=%v got %v", x, tol, got)
	})
}

func TestFromFloat64RejectsNonFinite(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat64(x, 0.01)
		require.ErrorIs(t, err, ErrNonFinite)
	}
}

func TestFromFloat64RejectsBadTolerance(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, tol := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		_, err := FromFloat64(0.5, tol)
		require.ErrorIs(t, err, ErrInvalidTolerance)
	}
}

func TestFromFloat64RejectsHugeMagnitude(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := FromFloat64(1e19, 0.01)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = FromFloat64(-1e19, 0.01)
	require.ErrorIs(t, err, ErrOverflow)
}
