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

	"github.com/exposurekit/go-exposure/exposure"
)

var fstopCmd = &cobra.Command{
	Use:   "fstop <f-number>",
	Short: "Convert an f-number into stops",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			reportErrorf("%s is not an f-number: %v", args[0], err)
		}
		av, err := exposure.AvFromFStop(f)
		if err != nil {
			reportErrorf("cannot place f/%v on the stop scale: %v", f, err)
		}
		log.With("fstop", f).Debugf("aperture is %v stops", av.Stop())
		fmt.Printf("%s stops (%v, precisely f/%.4f)\n",
			color.New(color.FgGreen).Sprint(av.Stop()), av, av.FStopPrecise())
	},
}
