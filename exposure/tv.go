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

// Tv is the time value, the shutter duration in seconds expressed in
// stops. A larger Tv is a faster shutter and thus less exposure. Shutter
// hardware only offers nominal durations, so Tv is restricted to the
// third-stop scale from 1/32000 s (stop -15) to 30 s (stop +5).
type Tv struct {
	stop rational.Rational
	time rational.Rational
}

// nominalThirdStops lists the nominal shutter durations for consecutive
// third stops, index i at stop (i-45)/3. The durations follow shutter
// dial markings rather than exact powers of two (1/50 instead of 32/1600
// and so on).
var nominalThirdStops = []rational.Rational{
	rational.MustNew(1, 32000),
	rational.MustNew(1, 25600),
	rational.MustNew(1, 20000),
	rational.MustNew(1, 16000),
	rational.MustNew(1, 12800),
	rational.MustNew(1, 10000),
	rational.MustNew(1, 8000),
	rational.MustNew(1, 6400),
	rational.MustNew(1, 5000),
	rational.MustNew(1, 4000),
	rational.MustNew(1, 3200),
	rational.MustNew(1, 2500),
	rational.MustNew(1, 2000),
	rational.MustNew(1, 1600),
	rational.MustNew(1, 1250),
	rational.MustNew(1, 1000),
	rational.MustNew(1, 800),
	rational.MustNew(1, 640),
	rational.MustNew(1, 500),
	rational.MustNew(1, 400),
	rational.MustNew(1, 320),
	rational.MustNew(1, 250),
	rational.MustNew(1, 200),
	rational.MustNew(1, 160),
	rational.MustNew(1, 125),
	rational.MustNew(1, 100),
	rational.MustNew(1, 80),
	rational.MustNew(1, 60),
	rational.MustNew(1, 50),
	rational.MustNew(1, 40),
	rational.MustNew(1, 30),
	rational.MustNew(1, 25),
	rational.MustNew(1, 20),
	rational.MustNew(1, 15),
	rational.MustNew(1, 13),
	rational.MustNew(1, 10),
	rational.MustNew(1, 8),
	rational.MustNew(1, 6),
	rational.MustNew(1, 5),
	rational.MustNew(1, 4),
	rational.MustNew(1, 3),
	rational.MustNew(10, 25),
	rational.MustNew(1, 2),
	rational.MustNew(10, 16),
	rational.MustNew(10, 13),
	rational.MustNew(1, 1),
	rational.MustNew(13, 10),
	rational.MustNew(16, 10),
	rational.MustNew(2, 1),
	rational.MustNew(25, 10),
	rational.MustNew(3, 1),
	rational.MustNew(4, 1),
	rational.MustNew(5, 1),
	rational.MustNew(6, 1),
	rational.MustNew(8, 1),
	rational.MustNew(10, 1),
	rational.MustNew(13, 1),
	rational.MustNew(15, 1),
	rational.MustNew(20, 1),
	rational.MustNew(25, 1),
	rational.MustNew(30, 1),
}

// Lookup maps keyed by reduced rationals, so that any representation of
// the same value hits the same entry.
var (
	stopToTime = make(map[rational.Rational]rational.Rational, len(nominalThirdStops))
	timeToStop = make(map[rational.Rational]rational.Rational, len(nominalThirdStops))
)

func init() {
	for i, d := range nominalThirdStops {
		stop := rational.MustNew(int64(i)-45, 3).Reduce()
		stopToTime[stop] = d
		timeToStop[d.Reduce()] = stop
	}
}

// TvFromStop places a shutter setting on the stop scale. The stop must be
// one of the nominal third stops, otherwise ErrNotNominal is reported.
func TvFromStop(stop rational.Rational) (Tv, error) {
	d, ok := stopToTime[stop.Reduce()]
	if !ok {
		return Tv{}, fmt.Errorf("%w: %v", ErrNotNominal, stop)
	}
	return Tv{stop: stop, time: d}, nil
}

// TvFromTime converts a nominal shutter duration in seconds, such as
// 1/125 or 2/1, into a time value. Durations off the nominal scale report
// ErrNotNominal.
func TvFromTime(duration rational.Rational) (Tv, error) {
	stop, ok := timeToStop[duration.Reduce()]
	if !ok {
		return Tv{}, fmt.Errorf("%w: duration %v", ErrNotNominal, duration)
	}
	return Tv{stop: stop, time: stopToTime[stop]}, nil
}

// Kind returns KindTv.
func (t Tv) Kind() Kind {
	return KindTv
}

// Stop returns the position on the stop scale.
func (t Tv) Stop() rational.Rational {
	return t.stop
}

// Time returns the nominal shutter duration in seconds.
func (t Tv) Time() rational.Rational {
	return t.time
}

// TimePrecise returns the exact duration 2^stop in seconds.
func (t Tv) TimePrecise() float64 {
	return math.Pow(2, t.stop.Float64())
}

func (t Tv) String() string {
	return fmt.Sprintf("Tv %s sec", formatSeconds(t.time))
}

// formatSeconds renders whole-second durations without the denominator,
// matching shutter dial markings ("2" rather than "2/1").
func formatSeconds(d rational.Rational) string {
	red := d.Reduce()
	if red.Den() == 1 {
		return fmt.Sprintf("%d", red.Num())
	}
	return red.String()
}
