// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-keccak-layout/pkg/keccak"
	"github.com/consensys/go-keccak-layout/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [flags]",
	Short: "print the offset table of the Keccak trace layout.",
	Long: `Print the offset table of the Keccak trace layout, giving for each column kind
	 its group, its range within that group and its range within a flattened row.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		phases := parsePhases(GetString(cmd, "phase"))
		chart := GetString(cmd, "chart")
		// Sanity check the layout (again)
		if err := keccak.CheckLayout(keccak.Layout, keccak.Groups); err != nil {
			fail("invalid layout: %s", err.Error())
		}
		//
		table := layoutTable(phases)
		table.SetMaxWidth(maxColumnWidth(6))
		//
		if err := table.Write(os.Stdout); err != nil {
			fail("%s", err.Error())
		}
		//
		for _, phase := range phases {
			fmt.Printf("%d cells live in %s phase\n", len(keccak.AllColumns(phase)), phase)
		}
		//
		if chart != "" {
			if err := writeLayoutChart(chart, phases); err != nil {
				fail("error writing chart: %s", err.Error())
			}
			//
			log.Debugf("wrote layout chart to %s", chart)
		}
	},
}

// Construct the offset table for all column kinds live in the given phases.
func layoutTable(phases []keccak.Phase) *util.TablePrinter {
	table := util.NewTablePrinter(6)
	table.AddRow("column", "group", "offset", "width", "position", "phase")
	//
	for k, slot := range keccak.Layout {
		kind := keccak.Kind(k)
		first := keccak.Column{Kind: kind, Index: 0}
		//
		if !livePhase(phases, slot.Phase) {
			continue
		}
		//
		table.AddRow(
			kind.String(),
			keccak.Groups[slot.Group].Name,
			fmt.Sprintf("[%d..%d)", slot.Offset, slot.Offset+slot.Width),
			fmt.Sprintf("%d", slot.Width),
			fmt.Sprintf("%d", keccak.Position(first)),
			slot.Phase.String(),
		)
	}
	//
	return table
}

func livePhase(phases []keccak.Phase, phase keccak.Phase) bool {
	for _, p := range phases {
		if p.Includes(phase) {
			return true
		}
	}
	//
	return false
}

func parsePhases(phase string) []keccak.Phase {
	switch phase {
	case "all":
		return keccak.PHASES
	case "round":
		return []keccak.Phase{keccak.ROUND_PHASE}
	case "sponge":
		return []keccak.Phase{keccak.SPONGE_PHASE}
	}
	//
	fail("unknown phase \"%s\" (expected all, round or sponge)", phase)
	// unreachable
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().String("phase", "all", "restrict to columns live in a given phase (all, round or sponge).")
	layoutCmd.Flags().String("chart", "", "write an html chart of column widths to the given file.")
}
