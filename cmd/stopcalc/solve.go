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

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exposurekit/go-exposure/exposure"
	"github.com/exposurekit/go-exposure/logging"
)

var (
	solveFStop    float64
	solveISO      float64
	solveShutter  string
	solveLux      float64
	solveCandelas float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the exposure equation for the missing setting",
	Long: `Given three settings including a light measurement (--lux or --candelas),
compute the missing aperture, film speed or shutter setting.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var settings []exposure.Setting
		given := make(map[exposure.Kind]bool)

		add := func(s exposure.Setting, err error) {
			if err != nil {
				reportErrorf("%v", err)
			}
			settings = append(settings, s)
			given[s.Kind()] = true
		}

		if cmd.Flags().Changed("fstop") {
			add(settingErr(exposure.AvFromFStop(solveFStop)))
		}
		if cmd.Flags().Changed("iso") {
			add(settingErr(exposure.SvFromISO(solveISO)))
		}
		if cmd.Flags().Changed("shutter") {
			d, err := parseDuration(solveShutter)
			if err != nil {
				reportErrorf("%s is not a duration: %v", solveShutter, err)
			}
			add(settingErr(exposure.TvFromTime(d)))
		}
		if cmd.Flags().Changed("lux") {
			add(settingErr(exposure.IvFromLux(solveLux)))
		}
		if cmd.Flags().Changed("candelas") {
			add(settingErr(exposure.BvFromCandelas(solveCandelas)))
		}

		for _, s := range settings {
			log.WithFields(logging.Fields{"kind": s.Kind(), "stop": s.Stop()}).Debug("given setting")
		}

		green := color.New(color.FgGreen)
		switch {
		case !given[exposure.KindTv]:
			tv, err := exposure.SolveTv(settings...)
			if err != nil {
				reportErrorf("%v", err)
			}
			fmt.Printf("%s (stop %v)\n", green.Sprint(tv), tv.Stop())
		case !given[exposure.KindAv]:
			av, err := exposure.SolveAv(settings...)
			if err != nil {
				reportErrorf("%v", err)
			}
			fmt.Printf("%s (stop %v)\n", green.Sprint(av), av.Stop())
		case !given[exposure.KindSv]:
			sv, err := exposure.SolveSv(settings...)
			if err != nil {
				reportErrorf("%v", err)
			}
			fmt.Printf("%s (stop %v)\n", green.Sprint(sv), sv.Stop())
		default:
			reportErrorf("all of aperture, speed and shutter are given; nothing to solve")
		}
	},
}

// settingErr narrows a typed constructor result to the Setting interface
// so it can pass through the shared add helper.
func settingErr[S exposure.Setting](s S, err error) (exposure.Setting, error) {
	return s, err
}

func init() {
	solveCmd.Flags().Float64Var(&solveFStop, "fstop", 0, "Aperture as an f-number")
	solveCmd.Flags().Float64Var(&solveISO, "iso", 0, "Film or sensor speed as an ISO number")
	solveCmd.Flags().StringVar(&solveShutter, "shutter", "", "Nominal shutter duration in seconds")
	solveCmd.Flags().Float64Var(&solveLux, "lux", 0, "Metered incident light in lux")
	solveCmd.Flags().Float64Var(&solveCandelas, "candelas", 0, "Metered scene luminance in cd/m2")
}
