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
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b using the binary GCD
// algorithm: shared factors of two are stripped and accumulated, a single
// even operand is halved, and two odd operands recurse on half their
// difference. GCD(0, 0) is 0.
//
// The loop is the iterative form of the recursive dispatch, so the work is
// bounded by the bit length of the larger operand with no stack growth.
func GCD[T constraints.Unsigned](a, b T) T {
	var shift uint
	for {
		switch {
		case a == b:
			return a << shift
		case a == 0:
			return b << shift
		case b == 0:
			return a << shift
		}
		aEven := a%2 == 0
		bEven := b%2 == 0
		switch {
		case aEven && bEven:
			a, b = a/2, b/2
			shift++
		case aEven:
			a /= 2
		case bEven:
			b /= 2
		case a > b:
			a = (a - b) / 2
		default:
			a, b = (b-a)/2, a
		}
	}
}
