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

// Package exposure models the five APEX photographic exposure quantities:
// aperture (Av), film speed (Sv), shutter time (Tv), scene luminance (Bv)
// and incident illuminance (Iv). Each quantity carries its position on the
// exposure scale as an exact rational number of stops, built from physical
// measurements via the rational best-approximation search.
//
// Given any three distinct settings that include a light measurement (Bv
// or Iv), the remaining aperture, speed or shutter setting follows from
// the additive exposure equation; see SolveAv, SolveSv and SolveTv.
package exposure

import (
	"errors"
	"fmt"
	"math"

	"github.com/exposurekit/go-exposure/data/rational"
)

// stopTolerance is the approximation tolerance used when snapping a stop
// computed from a physical measurement onto the rational stop scale. 0.1
// is a third of a stop with margin, so metered values land on the nominal
// third-stop scale.
const stopTolerance = 0.1

// Errors reported by constructors and solvers.
var (
	ErrBadMeasurement = errors.New("exposure: measurement must be positive and finite")
	ErrNotNominal     = errors.New("exposure: not a nominal shutter stop")
	ErrSettingsNeeded = errors.New("exposure: three distinct settings including Bv or Iv are required")
	ErrTargetGiven    = errors.New("exposure: target setting also given as input")
)

// Kind identifies one of the five exposure quantities.
type Kind int

// The exposure quantity kinds.
const (
	KindAv Kind = iota
	KindSv
	KindTv
	KindBv
	KindIv
)

func (k Kind) String() string {
	switch k {
	case KindAv:
		return "Av"
	case KindSv:
		return "Sv"
	case KindTv:
		return "Tv"
	case KindBv:
		return "Bv"
	case KindIv:
		return "Iv"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Setting is any exposure quantity positioned on the rational stop scale.
type Setting interface {
	Kind() Kind
	Stop() rational.Rational
}

// snapStop converts a stop computed from a physical measurement into the
// best rational approximation on the stop scale.
func snapStop(stop float64) (rational.Rational, error) {
	return rational.FromFloat64(stop, stopTolerance)
}

// solveStop evaluates the additive exposure equation for the target kind.
// The light-gathering quantities (Sv, Bv, Iv) add their stops, the
// light-limiting ones (Av, Tv) subtract; Av and Tv targets take the sum
// directly and an Sv target takes its negation.
func solveStop(target Kind, settings []Setting) (rational.Rational, error) {
	kinds := make(map[Kind]bool, len(settings))
	for _, s := range settings {
		if s.Kind() == target {
			return rational.Rational{}, fmt.Errorf("%w: %v", ErrTargetGiven, target)
		}
		kinds[s.Kind()] = true
	}
	if len(settings) != 3 || len(kinds) != 3 || !(kinds[KindBv] || kinds[KindIv]) {
		return rational.Rational{}, ErrSettingsNeeded
	}

	total := rational.MustNew(0, 1)
	var err error
	for _, s := range settings {
		switch s.Kind() {
		case KindSv, KindBv, KindIv:
			total, err = total.Add(s.Stop())
		default:
			total, err = total.Sub(s.Stop())
		}
		if err != nil {
			return rational.Rational{}, err
		}
	}
	if target == KindSv {
		return rational.MustNew(0, 1).Sub(total)
	}
	return total, nil
}

// SolveAv computes the aperture setting implied by the given settings.
func SolveAv(settings ...Setting) (Av, error) {
	stop, err := solveStop(KindAv, settings)
	if err != nil {
		return Av{}, err
	}
	return AvFromStop(stop), nil
}

// SolveSv computes the film speed setting implied by the given settings.
func SolveSv(settings ...Setting) (Sv, error) {
	stop, err := solveStop(KindSv, settings)
	if err != nil {
		return Sv{}, err
	}
	return SvFromStop(stop), nil
}

// SolveTv computes the shutter setting implied by the given settings. The
// resulting stop must be on the nominal shutter scale.
func SolveTv(settings ...Setting) (Tv, error) {
	stop, err := solveStop(KindTv, settings)
	if err != nil {
		return Tv{}, err
	}
	return TvFromStop(stop)
}

// round1 rounds to one decimal place for display quantities.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func checkMeasurement(v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrBadMeasurement, v)
	}
	return nil
}
