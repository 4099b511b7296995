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

import "math"

// Checked int64 arithmetic. Each helper returns the wrapped result and
// whether it is valid; callers translate a false into ErrOverflow.

func oadd64(a, b int64) (res int64, ok bool) {
	res = a + b
	return res, !((b > 0 && res < a) || (b < 0 && res > a))
}

func osub64(a, b int64) (res int64, ok bool) {
	res = a - b
	return res, !((b < 0 && res < a) || (b > 0 && res > a))
}

func omul64(a, b int64) (res int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// -MinInt64 is not representable, and MinInt64 / -1 faults below.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	res = a * b
	return res, res/b == a
}
