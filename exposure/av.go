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

// Av is the aperture value, the relative aperture (f-number) expressed in
// stops. A larger Av is a smaller aperture and thus less exposure.
type Av struct {
	stop rational.Rational
}

// AvFromStop places an aperture directly on the stop scale.
func AvFromStop(stop rational.Rational) Av {
	return Av{stop: stop}
}

// AvFromFStop converts an f-number such as 1.4 or 22 into an aperture
// value. The stop is 2*log10(f)/log10(2), snapped onto the rational stop
// scale.
func AvFromFStop(fstop float64) (Av, error) {
	if err := checkMeasurement(fstop); err != nil {
		return Av{}, err
	}
	stop, err := snapStop(2 * math.Log10(fstop) / math.Log10(2))
	if err != nil {
		return Av{}, err
	}
	return Av{stop: stop}, nil
}

// AvFromFocalLengthAndDiameter derives the aperture value from the lens
// geometry, both lengths in millimeters.
func AvFromFocalLengthAndDiameter(focalLength, diameter float64) (Av, error) {
	if err := checkMeasurement(focalLength); err != nil {
		return Av{}, err
	}
	if err := checkMeasurement(diameter); err != nil {
		return Av{}, err
	}
	return AvFromFStop(focalLength / diameter)
}

// Kind returns KindAv.
func (a Av) Kind() Kind {
	return KindAv
}

// Stop returns the position on the stop scale.
func (a Av) Stop() rational.Rational {
	return a.stop
}

// FStopPrecise returns the exact f-number sqrt(2)^stop.
func (a Av) FStopPrecise() float64 {
	return math.Pow(math.Sqrt2, a.stop.Float64())
}

// FStop returns the f-number as marked on a lens barrel: the precise value
// floored to two significant digits.
func (a Av) FStop() float64 {
	return floorSignificant(a.FStopPrecise(), 2)
}

func (a Av) String() string {
	f := a.FStop()
	if f < 10 {
		return fmt.Sprintf("Av f/%.1f", f)
	}
	return fmt.Sprintf("Av f/%.0f", f)
}
