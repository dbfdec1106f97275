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
package runtime

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/segmentio/encoding/json"
)

// Setup is the persisted form of the runtime tables declared for a circuit.
// Configurations carry the first column of each table, whilst specifications
// carry only their shape.
type Setup[F any] struct {
	Configs []Config[F] `json:"configs,omitempty"`
	Specs   []Spec      `json:"specs,omitempty"`
}

// ReadSetupFile reads the runtime table setup from a given JSON file.
func ReadSetupFile[F any](filename string) (Setup[F], error) {
	var setup Setup[F]
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return setup, err
	}
	//
	if err = json.Unmarshal(bytes, &setup); err != nil {
		return setup, fmt.Errorf("malformed runtime table setup %s: %w", filename, err)
	}
	// Configurations determine their own specifications.
	for _, cfg := range setup.Configs {
		setup.Specs = append(setup.Specs, SpecOf(cfg))
	}
	//
	if setup.Specs, err = dedupSpecs(setup.Specs); err != nil {
		return setup, fmt.Errorf("invalid runtime table setup %s: %w", filename, err)
	}
	//
	return setup, nil
}

// Remove repeated specifications, retaining the first occurrence of each.  A
// table declared twice with different lengths is an error.
func dedupSpecs(specs []Spec) ([]Spec, error) {
	var (
		seen   = make(map[int32]Spec)
		result = make([]Spec, 0, len(specs))
	)
	//
	for _, spec := range specs {
		if prev, ok := seen[spec.ID]; !ok {
			seen[spec.ID] = spec
			result = append(result, spec)
		} else if prev != spec {
			return nil, fmt.Errorf("conflicting specifications %s and %s", prev, spec)
		}
	}
	//
	return result, nil
}

// WriteJSON serialises a given value (e.g. a configuration, specification or
// table) as JSON.
func WriteJSON(value any) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}

// ReadTableFile reads a prover-time runtime table from a given JSON file.
func ReadTableFile[F any](filename string) (Table[F], error) {
	var table Table[F]
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return table, err
	}
	//
	if err = json.Unmarshal(bytes, &table); err != nil {
		return table, fmt.Errorf("malformed runtime table %s: %w", filename, err)
	}
	//
	return table, nil
}

// EncodeSpecs encodes a set of specifications as a CBOR setup artifact.
func EncodeSpecs(specs []Spec) ([]byte, error) {
	return cbor.Marshal(specs)
}

// DecodeSpecs decodes a set of specifications from a CBOR setup artifact.
func DecodeSpecs(bytes []byte) ([]Spec, error) {
	var specs []Spec
	//
	if err := cbor.Unmarshal(bytes, &specs); err != nil {
		return nil, fmt.Errorf("malformed runtime table specs: %w", err)
	}
	//
	return specs, nil
}
