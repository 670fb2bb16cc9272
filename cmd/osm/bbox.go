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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"m4o.io/osm/model"
)

func init() {
	RootCmd.AddCommand(bboxCmd)

	flags := bboxCmd.Flags()
	flags.BoolP("json", "j", false, "format the bounding box in JSON")
}

var bboxCmd = &cobra.Command{
	Use:   "bbox <lat,lon>...",
	Short: "Compute the bounding box covering the given points",
	Long:  "Compute the bounding box covering the given points",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if err := runBBox(out, args, jsonfmt); err != nil {
			log.Fatal(err)
		}
	},
}

func runBBox(w io.Writer, args []string, jsonfmt bool) error {
	bbox := model.InitialBoundingBox()

	for _, arg := range args {
		lat, lng, err := parsePoint(arg)
		if err != nil {
			return err
		}

		bbox.ExpandWithLatLng(lat, lng)
	}

	if jsonfmt {
		b, err := json.Marshal(bbox)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	fmt.Fprintln(w, bbox)

	return nil
}

func parsePoint(s string) (lat, lng model.Degrees, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed point %q, expected <lat,lon>", s)
	}

	lat, err = model.ParseDegrees(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}

	lng, err = model.ParseDegrees(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}

	return lat, lng, nil
}
