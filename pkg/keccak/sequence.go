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

	"github.com/consensys/go-keccak-layout/pkg/util/collection/iter"
)

// Refs returns references to every cell of this row container in canonical
// order: hash_index, step_index, mode_flags, pad_bytes_flags, pad_suffix,
// round_constants, curr and, finally, next.  Writing through a reference
// updates the container.
func (p *Columns[T]) Refs() []*T {
	var refs = make([]*T, 0, ZKVM_KECCAK_COLS_LENGTH)
	//
	for _, group := range p.groupRefs() {
		refs = append(refs, group...)
	}
	//
	return refs
}

// Flatten returns the values of every cell of this row container in canonical
// order.
func (p *Columns[T]) Flatten() []T {
	return deref(p.Refs())
}

// Iterator returns an iterator over the values of every cell of this row
// container in canonical order.  The values are copied when the iterator is
// constructed, hence subsequent changes to the container are not visible.
func (p *Columns[T]) Iterator() iter.Iterator[T] {
	var iters = make([]iter.Iterator[T], NUM_GROUPS)
	//
	for g, group := range p.groupRefs() {
		iters[g] = iter.NewArrayIterator(deref(group))
	}
	//
	return iter.Concat(iters...)
}

// FromFlat reconstructs a row container from a sequence of cells given in
// canonical order (e.g. as produced by Flatten).  Groups are drained from the
// tail of the sequence according to the schema descriptor: next, curr,
// round_constants, pad_suffix, pad_bytes_flags, mode_flags, step_index and,
// finally, hash_index.  This panics if the sequence does not have exactly the
// declared width of a row container.
func FromFlat[T any](cells []T) *Columns[T] {
	var (
		row    Columns[T]
		groups = row.groupRefs()
		rest   = cells
	)
	//
	if uint(len(cells)) != ZKVM_KECCAK_COLS_LENGTH {
		panic(fmt.Sprintf("invalid row length (was %d, expected %d)", len(cells), ZKVM_KECCAK_COLS_LENGTH))
	}
	//
	for g := int(NUM_GROUPS) - 1; g >= 0; g-- {
		var (
			name  = Groups[g].Name
			width = int(Groups[g].Width)
		)
		//
		if len(rest) < width {
			panic(fmt.Sprintf("insufficient cells for group %s (was %d, expected %d)", name, len(rest), width))
		}
		//
		fill(name, groups[g], rest[len(rest)-width:])
		rest = rest[:len(rest)-width]
	}
	// Sanity check
	if len(rest) != 0 {
		panic(fmt.Sprintf("internal failure (%d cells remaining after reconstruction)", len(rest)))
	}
	//
	return &row
}

// FromIterator reconstructs a row container by draining an iterator whose
// items are given in canonical order.
func FromIterator[T any](items iter.Iterator[T]) *Columns[T] {
	return FromFlat(items.Collect())
}

// Return references to the cells of each group, in canonical order.
func (p *Columns[T]) groupRefs() [NUM_GROUPS][]*T {
	return [NUM_GROUPS][]*T{
		{&p.HashIndex},
		{&p.StepIndex},
		refsOf(p.ModeFlags[:]),
		refsOf(p.PadBytesFlags[:]),
		refsOf(p.PadSuffix[:]),
		refsOf(p.RoundConstants[:]),
		refsOf(p.Curr[:]),
		refsOf(p.Next[:]),
	}
}

// Assign the cells of a group, which must have exactly the expected width.
func fill[T any](name string, dst []*T, src []T) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("invalid width for group %s (was %d, expected %d)", name, len(src), len(dst)))
	}
	//
	for i, v := range src {
		*dst[i] = v
	}
}

func refsOf[T any](cells []T) []*T {
	var refs = make([]*T, len(cells))
	//
	for i := range cells {
		refs[i] = &cells[i]
	}
	//
	return refs
}

func deref[T any](refs []*T) []T {
	var values = make([]T, len(refs))
	//
	for i, r := range refs {
		values[i] = *r
	}
	//
	return values
}
