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
)

var approxTolerance float64

var approxCmd = &cobra.Command{
	Use:   "approx <value>",
	Short: "Best rational approximation of a decimal value",
	Long:  "Find the lowest-denominator fraction within the given tolerance of a decimal value, searching the Stern-Brocot tree.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			reportErrorf("%s is not a decimal value: %v", args[0], err)
		}
		r, err := rational.FromFloat64(x, approxTolerance)
		if err != nil {
			reportErrorf("cannot approximate %v: %v", x, err)
		}
		log.With("value", x).With("tolerance", approxTolerance).Debugf("approximated as %v", r)
		fmt.Printf("%s (= %g, off by %g)\n",
			color.New(color.FgGreen).Sprint(r), r.Float64(), r.Float64()-x)
	},
}

func init() {
	approxCmd.Flags().Float64VarP(&approxTolerance, "tolerance", "t", 0.001, "Maximum allowed approximation error")
}
