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

// Illuminance at Iv 0 in the two metering units.
const (
	luxAtStopZero         = 0.3 * 224
	footCandlesAtStopZero = 0.3 * 20.8
)

// Iv is the incident light value, the metered illuminance falling on the
// scene in stops. A larger Iv is a stronger illumination.
type Iv struct {
	stop rational.Rational
}

// IvFromStop places an illuminance directly on the stop scale.
func IvFromStop(stop rational.Rational) Iv {
	return Iv{stop: stop}
}

// IvFromLux converts an illuminance in lux into an incident light value.
func IvFromLux(lux float64) (Iv, error) {
	if err := checkMeasurement(lux); err != nil {
		return Iv{}, err
	}
	stop, err := snapStop(math.Log2(lux / luxAtStopZero))
	if err != nil {
		return Iv{}, err
	}
	return Iv{stop: stop}, nil
}

// IvFromFootCandles converts an illuminance in foot-candles into an
// incident light value.
func IvFromFootCandles(footCandles float64) (Iv, error) {
	if err := checkMeasurement(footCandles); err != nil {
		return Iv{}, err
	}
	stop, err := snapStop(math.Log2(footCandles / footCandlesAtStopZero))
	if err != nil {
		return Iv{}, err
	}
	return Iv{stop: stop}, nil
}

// Kind returns KindIv.
func (i Iv) Kind() Kind {
	return KindIv
}

// Stop returns the position on the stop scale.
func (i Iv) Stop() rational.Rational {
	return i.stop
}

// Lux returns the illuminance in lux, rounded to one decimal.
func (i Iv) Lux() float64 {
	return round1(math.Pow(2, i.stop.Float64()) * luxAtStopZero)
}

// FootCandles returns the illuminance in foot-candles, rounded to one
// decimal.
func (i Iv) FootCandles() float64 {
	return round1(math.Pow(2, i.stop.Float64()) * footCandlesAtStopZero)
}

func (i Iv) String() string {
	return fmt.Sprintf("Iv %.1f lux", i.Lux())
}
