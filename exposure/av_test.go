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

package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exposurekit/go-exposure/data/rational"
	"github.com/exposurekit/go-exposure/test/partitiontest"
)

func TestAvFromFStop(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := []struct {
		fstop float64
		want  rational.Rational
	}{
		{fstop: 1.4, want: rational.MustNew(1, 1)},
		{fstop: 22, want: rational.MustNew(9, 1)},
		{fstop: 1.7, want: rational.MustNew(3, 2)},
		{fstop: 1.6, want: rational.MustNew(4, 3)},
		{fstop: 1.8, want: rational.MustNew(5, 3)},
	}
	for _, tc := range cases {
		av, err := AvFromFStop(tc.fstop)
		require.NoError(t, err, "f/%v", tc.fstop)
		require.True(t, av.Stop().Eq(tc.want), "f/%v: got stop %v, want %v", tc.fstop, av.Stop(), tc.want)
	}
}

func TestAvFStop(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.InDelta(t, 1.4142135623730951, AvFromStop(rational.MustNew(1, 1)).FStopPrecise(), 1e-12)
	require.Equal(t, 1.4, AvFromStop(rational.MustNew(1, 1)).FStop())
	require.Equal(t, 1.7, AvFromStop(rational.MustNew(5, 3)).FStop())
	require.Equal(t, float64(22), AvFromStop(rational.MustNew(9, 1)).FStop())
}

func TestAvString(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, "Av f/1.4", AvFromStop(rational.MustNew(1, 1)).String())
	require.Equal(t, "Av f/22", AvFromStop(rational.MustNew(9, 1)).String())

	av, err := AvFromFocalLengthAndDiameter(10, 5)
	require.NoError(t, err)
	require.Equal(t, "Av f/2.0", av.String())
}

func TestAvRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	// every full stop from f/1 to f/32 survives the fstop -> stop -> fstop trip
	for stop := int64(0); stop <= 10; stop++ {
		marked := floorSignificant(math.Pow(math.Sqrt2, float64(stop)), 2)
		av, err := AvFromFStop(marked)
		require.NoError(t, err)
		require.True(t, av.Stop().Eq(rational.MustNew(stop, 1)),
			"f/%v: got stop %v", marked, av.Stop())
	}
}

func TestAvRejectsBadFStop(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, f := range []float64{0, -1.4, math.Inf(1), math.NaN()} {
		_, err := AvFromFStop(f)
		require.ErrorIs(t, err, ErrBadMeasurement, "f/%v", f)
	}
	_, err := AvFromFocalLengthAndDiameter(50, 0)
	require.ErrorIs(t, err, ErrBadMeasurement)
}
