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
// Package runtime provides lookup tables whose contents are not fixed by the
// circuit.  The first column (the keys) of a runtime table is declared at setup
// time, whilst the second column (the values) is supplied fresh for each
// execution.
package runtime

import (
	"fmt"
)

// Spec is the declared shape of a runtime table, as persisted with the setup
// of a circuit.
type Spec struct {
	ID  int32 `json:"id" cbor:"1,keyasint"`
	Len uint  `json:"len" cbor:"2,keyasint"`
}

func (p Spec) String() string {
	return fmt.Sprintf("{id:%d,len:%d}", p.ID, p.Len)
}

// Config declares a runtime table at setup time, including the concrete
// contents of its first column.  The length of the table is always derived
// from the first column, and never stored separately.
type Config[F any] struct {
	ID          int32 `json:"id"`
	FirstColumn []F   `json:"first_column"`
}

// NewConfig constructs a new runtime table configuration.
func NewConfig[F any](id int32, firstColumn ...F) Config[F] {
	return Config[F]{id, firstColumn}
}

// Id returns the identifier of this runtime table.  Identifiers share a
// namespace with all other lookup tables, though no check for collisions is
// made here.
func (p Config[F]) Id() int32 {
	return p.ID
}

// Len returns the number of entries in this runtime table.
func (p Config[F]) Len() uint {
	return uint(len(p.FirstColumn))
}

// IsEmpty checks whether this runtime table has no entries.
func (p Config[F]) IsEmpty() bool {
	return len(p.FirstColumn) == 0
}

// SpecOf projects a runtime table configuration onto its specification, thus
// dropping the contents of its first column.
func SpecOf[F any](cfg Config[F]) Spec {
	return Spec{cfg.ID, cfg.Len()}
}

// Compatible checks whether a given prover-time table can be paired with this
// configuration.  That is, whether it has the same identifier and the same
// number of entries.
func (p Config[F]) Compatible(table Table[F]) bool {
	return p.ID == table.ID && p.Len() == table.Len()
}

// Table provides the second column of a runtime table for a given execution.
type Table[F any] struct {
	ID   int32 `json:"id"`
	Data []F   `json:"data"`
}

// NewTable constructs a new prover-time runtime table.
func NewTable[F any](id int32, data ...F) Table[F] {
	return Table[F]{id, data}
}

// Len returns the number of entries in this table.
func (p Table[F]) Len() uint {
	return uint(len(p.Data))
}
