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
	"fmt"
	"math"

	"github.com/exposurekit/go-exposure/data/rational"
)

// candelasAtStopZero is the scene luminance in cd/m2 at Bv 0
// (one foot-lambert).
const candelasAtStopZero = 3.4262591

// Bv is the brightness value, the metered luminance of the scene in
// stops. A larger Bv is a brighter scene.
type Bv struct {
	stop rational.Rational
}

// BvFromStop places a scene luminance directly on the stop scale.
func BvFromStop(stop rational.Rational) Bv {
	return Bv{stop: stop}
}

// BvFromCandelas converts a luminance in cd/m2 into a brightness value.
func BvFromCandelas(candelas float64) (Bv, error) {
	if err := checkMeasurement(candelas); err != nil {
		return Bv{}, err
	}
	stop, err := snapStop(math.Log2(candelas / (0.3 * 11.4)))
	if err != nil {
		return Bv{}, err
	}
	return Bv{stop: stop}, nil
}

// BvFromFootLamberts converts a luminance in foot-lamberts into a
// brightness value.
func BvFromFootLamberts(footLamberts float64) (Bv, error) {
	if err := checkMeasurement(footLamberts); err != nil {
		return Bv{}, err
	}
	stop, err := snapStop(math.Log2(footLamberts))
	if err != nil {
		return Bv{}, err
	}
	return Bv{stop: stop}, nil
}

// Kind returns KindBv.
func (b Bv) Kind() Kind {
	return KindBv
}

// Stop returns the position on the stop scale.
func (b Bv) Stop() rational.Rational {
	return b.stop
}

// Candelas returns the luminance in cd/m2, rounded to one decimal.
func (b Bv) Candelas() float64 {
	return round1(math.Pow(2, b.stop.Float64()) * candelasAtStopZero)
}

// FootLamberts returns the luminance in foot-lamberts.
func (b Bv) FootLamberts() float64 {
	return math.Pow(2, b.stop.Float64())
}

func (b Bv) String() string {
	return fmt.Sprintf("Bv %.1f cd/m2", b.Candelas())
}
