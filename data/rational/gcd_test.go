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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/exposurekit/go-exposure/test/partitiontest"
)

func TestGCDBaseCases(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, uint64(0), GCD[uint64](0, 0))
	require.Equal(t, uint64(5), GCD[uint64](0, 5))
	require.Equal(t, uint64(7), GCD[uint64](7, 0))
	require.Equal(t, uint64(6), GCD[uint64](6, 6))
}

func TestGCDParityDispatch(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := []struct{ a, b, want uint64 }{
		{12, 18, 6},   // both even
		{12, 9, 3},    // one even
		{35, 49, 7},   // both odd
		{1024, 48, 16},
		{17, 13, 1},
		{1, 1 << 40, 1},
		{355, 113, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, GCD(tc.a, tc.b), "GCD(%d, %d)", tc.a, tc.b)
		require.Equal(t, tc.want, GCD(tc.b, tc.a), "GCD(%d, %d)", tc.b, tc.a)
	}
}

func TestGCDOtherWidths(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, uint32(6), GCD[uint32](12, 18))
	require.Equal(t, uint16(25), GCD[uint16](100, 75))
	require.Equal(t, uint(21), GCD[uint](1071, 462))
}

func TestGCDMatchesBigInt(t *testing.T) {
	partitiontest.PartitionTest(t)

	// big.Int.GCD defines GCD(0, b) as 0, so the zero cases stay with
	// TestGCDBaseCases and the oracle only sees positive operands.
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Uint64Range(1, math.MaxUint64).Draw(rt, "a")
		b := rapid.Uint64Range(1, math.MaxUint64).Draw(rt, "b")
		want := new(big.Int).GCD(nil, nil,
			new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		require.Equal(t, want.Uint64(), GCD(a, b), "GCD(%d, %d)", a, b)
	})
}
