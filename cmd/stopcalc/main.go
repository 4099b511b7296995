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

// stopcalc converts photographic measurements into exact rational stops
// and solves the exposure equation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/exposurekit/go-exposure/config"
	"github.com/exposurekit/go-exposure/logging"
)

var (
	versionCheck bool
	verbose      bool
)

var log = logging.Base()

var rootCmd = &cobra.Command{
	Use:   "stopcalc",
	Short: "CLI for exact photographic stop arithmetic",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logging.Debug)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return
		}
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(approxCmd)
	rootCmd.AddCommand(fstopCmd)
	rootCmd.AddCommand(shutterCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display current build version and exit")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// Hidden command to generate docs in a given directory
	// stopcalc generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
