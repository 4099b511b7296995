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
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exposurekit/go-exposure/data/rational"
	"github.com/exposurekit/go-exposure/exposure"
)

var shutterCmd = &cobra.Command{
	Use:   "shutter <duration>",
	Short: "Convert a nominal shutter duration into stops",
	Long:  `Convert a nominal shutter duration in seconds, like "1/125" or "30", into its position on the stop scale.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := parseDuration(args[0])
		if err != nil {
			reportErrorf("%s is not a duration: %v", args[0], err)
		}
		tv, err := exposure.TvFromTime(d)
		if err != nil {
			reportErrorf("%v", err)
		}
		log.With("duration", d).Debugf("shutter is %v stops", tv.Stop())
		fmt.Printf("%s stops (%v)\n", color.New(color.FgGreen).Sprint(tv.Stop()), tv)
	},
}

// parseDuration accepts either a fraction like "1/125" or a whole number
// of seconds like "30".
func parseDuration(s string) (rational.Rational, error) {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return rational.New(sec, 1)
	}
	return rational.Parse(s)
}
