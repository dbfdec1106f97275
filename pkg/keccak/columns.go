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
package keccak

import (
	"fmt"

	"github.com/consensys/go-keccak-layout/pkg/util/field"
)

// Columns holds the cells of a single row of the Keccak trace, along with the
// slice of the following row needed by constraints relating consecutive steps.
// The container is generic over the type of its cells, such that the same
// layout can hold field elements (witness generation), symbolic expressions
// (constraint authoring) or booleans (testing).
type Columns[T any] struct {
	// Identifies the hash this row belongs to.
	HashIndex T
	// Identifies the step of the hash this row represents.
	StepIndex T
	// Round, Absorb, Squeeze, Root, PadLength, InvPadLength, TwoToPad
	ModeFlags [MODE_FLAGS_COLS_LENGTH]T
	// 136 boolean values (sponge)
	PadBytesFlags [RATE_IN_BYTES]T
	// 5 values with padding suffix (sponge)
	PadSuffix [SUFFIX_COLS_LENGTH]T
	// Round constants (round)
	RoundConstants [QUARTERS]T
	// Curr[0..1965)
	Curr [ZKVM_KECCAK_COLS_CURR]T
	// Next[0..100)
	Next [ZKVM_KECCAK_COLS_NEXT]T
}

// NewColumns constructs a row container with every cell holding the given
// value.  This is required for cell types whose Go zero value is not the
// intended default (e.g. symbolic expressions).
func NewColumns[T any](zero T) *Columns[T] {
	var row Columns[T]
	//
	for _, ref := range row.Refs() {
		*ref = zero
	}
	//
	return &row
}

// DefaultColumns constructs a row container with every cell holding zero.
// Untouched cells (e.g. the round constants on a non-round row) thus read as
// zero, which ensures that selectors keyed on them remain disabled.
func DefaultColumns[F field.Element[F]]() *Columns[F] {
	return NewColumns(field.Zero[F]())
}

// Chunk returns a contiguous view of length cells within the current-row region,
// starting at a given offset.  The view aliases the container.
func (p *Columns[T]) Chunk(offset uint, length uint) []T {
	if offset+length > ZKVM_KECCAK_COLS_CURR {
		panic(fmt.Sprintf("chunk [%d..%d) out-of-bounds (width %d)", offset, offset+length, ZKVM_KECCAK_COLS_CURR))
	}
	//
	return p.Curr[offset : offset+length]
}

// Clone returns a shallow copy of this row container.
func (p *Columns[T]) Clone() *Columns[T] {
	var row = *p
	//
	return &row
}

// Equal determines whether two row containers agree on every cell, according
// to a given equality.
func (p *Columns[T]) Equal(other *Columns[T], eq func(T, T) bool) bool {
	var (
		lhs = p.Refs()
		rhs = other.Refs()
	)
	//
	for i := range lhs {
		if !eq(*lhs[i], *rhs[i]) {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Addressing
// ============================================================================

// Ref returns a reference to the cell of a given column, through which it can
// be both read and written.  This panics if the column's sub-index is
// out-of-bounds for its kind.
func (p *Columns[T]) Ref(col Column) *T {
	slot := slotOf(col)
	index := slot.Offset + col.Index
	//
	switch slot.Group {
	case HASH_INDEX_GROUP:
		return &p.HashIndex
	case STEP_INDEX_GROUP:
		return &p.StepIndex
	case MODE_FLAGS_GROUP:
		return &p.ModeFlags[index]
	case PAD_BYTES_FLAGS_GROUP:
		return &p.PadBytesFlags[index]
	case PAD_SUFFIX_GROUP:
		return &p.PadSuffix[index]
	case ROUND_CONSTANTS_GROUP:
		return &p.RoundConstants[index]
	case CURR_GROUP:
		return &p.Curr[index]
	case NEXT_GROUP:
		return &p.Next[index]
	}
	// Unreachable, since the layout is checked on initialisation.
	panic(fmt.Sprintf("unknown group %d", slot.Group))
}

// Get returns the value of the cell of a given column.
func (p *Columns[T]) Get(col Column) T {
	return *p.Ref(col)
}

// Set assigns the value of the cell of a given column.
func (p *Columns[T]) Set(col Column, val T) {
	*p.Ref(col) = val
}
