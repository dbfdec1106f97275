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
// Package binding mirrors runtime tables for marshalling values across runtimes.
// Each field element is exposed as four little endian 64bit limbs in regular
// (i.e. non-Montgomery) form.
package binding

import (
	"github.com/consensys/go-keccak-layout/pkg/runtime"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
)

// Limbs is the host representation of a single field element.
type Limbs = [4]uint64

// HostRuntimeTable mirrors a prover-time runtime table.
type HostRuntimeTable struct {
	ID   int32   `json:"id"`
	Data []Limbs `json:"data"`
}

// FromTable converts a runtime table into its host representation.
func FromTable(table runtime.Table[bls12_377.Element]) HostRuntimeTable {
	var data = make([]Limbs, len(table.Data))
	//
	for i, v := range table.Data {
		data[i] = v.Limbs()
	}
	//
	return HostRuntimeTable{table.ID, data}
}

// ToTable converts a host representation back into a runtime table.
func (p HostRuntimeTable) ToTable() runtime.Table[bls12_377.Element] {
	var data = make([]bls12_377.Element, len(p.Data))
	//
	for i, limbs := range p.Data {
		data[i] = bls12_377.FromLimbs(limbs)
	}
	//
	return runtime.NewTable(p.ID, data...)
}
