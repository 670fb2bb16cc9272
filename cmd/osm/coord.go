// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"m4o.io/osm/model"
)

func init() {
	RootCmd.AddCommand(coordCmd)
	addCoordFlags(coordCmd.Flags())
}

func addCoordFlags(flags *pflag.FlagSet) {
	flags.BoolP("from-e7", "f", false, "treat arguments as E7 fixed-point integers")
}

var coordCmd = &cobra.Command{
	Use:   "coord <value>...",
	Short: "Convert coordinates between decimal degrees and E7 fixed-point",
	Long:  "Convert coordinates between decimal degrees and E7 fixed-point",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fromE7, err := cmd.Flags().GetBool("from-e7")
		if err != nil {
			log.Fatal(err)
		}

		if err := runCoord(out, args, fromE7); err != nil {
			log.Fatal(err)
		}
	},
}

func runCoord(w io.Writer, args []string, fromE7 bool) error {
	for _, arg := range args {
		if fromE7 {
			v, err := strconv.ParseInt(arg, 10, 32)
			if err != nil {
				return err
			}

			d := model.FromE7(int32(v))
			fmt.Fprintf(w, "%s\n", strconv.FormatFloat(float64(d), 'f', -1, 64))

			continue
		}

		d, err := model.ParseDegrees(arg)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\n", d.E7())
	}

	return nil
}
