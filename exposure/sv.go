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

// Sv is the speed value, the sensitivity of the film or sensor in stops
// relative to ISO 100. A larger Sv is a faster film.
type Sv struct {
	stop rational.Rational
}

// SvFromStop places a film speed directly on the stop scale.
func SvFromStop(stop rational.Rational) Sv {
	return Sv{stop: stop}
}

// SvFromISO converts an ISO speed such as 100 or 400 into a speed value;
// the stop is log2(iso/100), snapped onto the rational stop scale.
func SvFromISO(iso float64) (Sv, error) {
	if err := checkMeasurement(iso); err != nil {
		return Sv{}, err
	}
	stop, err := snapStop(math.Log2(iso / 100))
	if err != nil {
		return Sv{}, err
	}
	return Sv{stop: stop}, nil
}

// Kind returns KindSv.
func (s Sv) Kind() Kind {
	return KindSv
}

// Stop returns the position on the stop scale.
func (s Sv) Stop() rational.Rational {
	return s.stop
}

// ISO returns the speed as an ISO number, 100*2^stop.
func (s Sv) ISO() float64 {
	return 100 * math.Pow(2, s.stop.Float64())
}

func (s Sv) String() string {
	return fmt.Sprintf("Sv %g ISO", round1(s.ISO()))
}
