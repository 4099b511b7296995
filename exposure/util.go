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

import "math"

// floorSignificant truncates x down to the given number of significant
// digits: floorSignificant(22.627, 2) is 22, floorSignificant(1.4142, 2)
// is 1.4. x must be positive.
func floorSignificant(x float64, digits int) float64 {
	exp := float64(digits) - 1 - math.Floor(math.Log10(x))
	scale := math.Pow(10, exp)
	v := math.Floor(x*scale) / scale
	// scrub the residue of the division back to the requested precision
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
