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

	"github.com/consensys/go-keccak-layout/pkg/runtime"
	"github.com/consensys/go-keccak-layout/pkg/util"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "inspect and check runtime tables.",
}

var runtimeSpecCmd = &cobra.Command{
	Use:   "spec [flags] setup_file",
	Short: "print the specifications of the runtime tables declared in a setup file.",
	Long: `Print the specifications (i.e. identifier and length) of the runtime tables declared in
	 a given setup file.  Optionally, the specifications can be written as a binary (cbor) setup artifact.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		output := GetString(cmd, "output")
		setup := readSetupFile(args[0])
		// Check for duplicates
		registry := runtime.NewRegistry(setup.Configs...)
		//
		table := util.NewTablePrinter(2)
		table.AddRow("id", "len")
		//
		for _, spec := range setup.Specs {
			table.AddRow(fmt.Sprintf("%d", spec.ID), fmt.Sprintf("%d", spec.Len))
		}
		//
		if err := table.Write(os.Stdout); err != nil {
			fail("%s", err.Error())
		}
		//
		log.Debugf("registered %d runtime tables", registry.Len())
		//
		if output != "" {
			bytes, err := runtime.EncodeSpecs(setup.Specs)
			if err == nil {
				err = os.WriteFile(output, bytes, 0644)
			}
			//
			if err != nil {
				fail("error writing %s: %s", output, err.Error())
			}
		}
	},
}

var runtimeCheckCmd = &cobra.Command{
	Use:   "check [flags] setup_file table_file(s)",
	Short: "check runtime tables against their declared configurations.",
	Long: `Check that each of the given prover-time runtime tables matches exactly one of the
	 configurations declared in a given setup file, and has the same length.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		setup := readSetupFile(args[0])
		registry := runtime.NewRegistry(setup.Configs...)
		//
		for _, filename := range args[1:] {
			table, err := runtime.ReadTableFile[bls12_377.Element](filename)
			if err != nil {
				fail("%s", err.Error())
			}
			//
			cfg, ok := registry.Lookup(table.ID)
			//
			if !ok {
				fail("%s: unknown runtime table %d", filename, table.ID)
			} else if !cfg.Compatible(table) {
				fail("%s: runtime table %d has %d entries (expected %d)", filename, table.ID, table.Len(), cfg.Len())
			}
			//
			registry.Bind(table)
			fmt.Printf("%s: runtime table %d ok (%d entries)\n", filename, table.ID, table.Len())
		}
	},
}

func readSetupFile(filename string) runtime.Setup[bls12_377.Element] {
	setup, err := runtime.ReadSetupFile[bls12_377.Element](filename)
	if err != nil {
		fail("%s", err.Error())
	}
	//
	return setup
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runtimeCmd)
	runtimeCmd.AddCommand(runtimeSpecCmd)
	runtimeCmd.AddCommand(runtimeCheckCmd)
	runtimeSpecCmd.Flags().StringP("output", "o", "", "write specifications (as cbor) to the given file.")
}
