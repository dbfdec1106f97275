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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/go-keccak-layout/pkg/keccak"
	"github.com/consensys/go-keccak-layout/pkg/util"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace [flags] message",
	Short: "generate the steps for hashing a given message.",
	Long: `Generate the sequence of steps (i.e. rows of the Keccak trace) for hashing a given
	 message, which is given in hex unless the text flag is set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		workers := GetUint(cmd, "workers")
		output := GetString(cmd, "output")
		message := readMessage(args[0], GetFlag(cmd, "text"))
		stats := util.NewPerfStats()
		// Generate steps
		rows, digest := keccak.Schedule[bls12_377.Element](GetUint64(cmd, "hash-index"), message)
		//
		stats.Log("Generating steps")
		// Sanity check flattening
		if GetFlag(cmd, "check") {
			checkRows(rows, workers)
		}
		//
		printSummary(rows, message, digest)
		//
		if output != "" {
			if err := writeRows(output, rows, workers); err != nil {
				fail("error writing %s: %s", output, err.Error())
			}
		}
	},
}

// A single step of the trace, holding concrete field elements.
type step = keccak.Columns[bls12_377.Element]

// TraceRow is the persisted form of a single row of the trace.
type TraceRow struct {
	Step  uint     `json:"step"`
	Phase string   `json:"phase"`
	Cells []string `json:"cells"`
}

func readMessage(arg string, text bool) []byte {
	if text {
		return []byte(arg)
	}
	//
	bytes, err := hex.DecodeString(arg)
	if err != nil {
		fail("invalid hex message: %s", err.Error())
	}
	//
	return bytes
}

// Check every row survives being flattened and then reconstructed.
func checkRows(rows []*step, workers uint) {
	eq := func(l, r bls12_377.Element) bool { return l.Equals(r) }
	//
	rebuilt := keccak.ParMapRows(rows, workers, func(row *step) *step {
		return keccak.FromFlat(row.Flatten())
	})
	//
	for i := range rows {
		if !rows[i].Equal(rebuilt[i], eq) {
			fail("step %d does not survive flattening", i)
		}
	}
	//
	log.Debugf("checked %d steps", len(rows))
}

func printSummary(rows []*step, message []byte, digest [keccak.HASH_BYTES]byte) {
	var counts = make(map[keccak.Phase]uint)
	//
	for _, row := range rows {
		counts[keccak.PhaseOf(row)]++
	}
	//
	table := util.NewTablePrinter(2)
	table.AddRow("property", "value")
	table.AddRow("message bytes", fmt.Sprintf("%d", len(message)))
	table.AddRow("pad bytes", fmt.Sprintf("%d", keccak.PadLengthOf(uint(len(message)))))
	table.AddRow("steps", fmt.Sprintf("%d", len(rows)))
	table.AddRow("sponge steps", fmt.Sprintf("%d", counts[keccak.SPONGE_PHASE]))
	table.AddRow("round steps", fmt.Sprintf("%d", counts[keccak.ROUND_PHASE]))
	table.AddRow("digest", hex.EncodeToString(digest[:]))
	//
	if err := table.Write(os.Stdout); err != nil {
		fail("%s", err.Error())
	}
}

func writeRows(filename string, rows []*step, workers uint) error {
	// Render cells in parallel
	texts := keccak.ParMapRows(rows, workers, func(row *step) *keccak.Columns[string] {
		return keccak.ParMap(row, 1, func(e bls12_377.Element) string { return e.Text(10) })
	})
	//
	trace := make([]TraceRow, len(rows))
	//
	for i, row := range texts {
		trace[i] = TraceRow{uint(i), keccak.PhaseOf(rows[i]).String(), row.Flatten()}
	}
	//
	bytes, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Bool("text", false, "treat message as text rather than hex.")
	traceCmd.Flags().Bool("check", false, "check every step survives flattening.")
	traceCmd.Flags().Uint64("hash-index", 0, "index of the hash.")
	traceCmd.Flags().StringP("output", "o", "", "write flattened steps (as json) to the given file.")
}
