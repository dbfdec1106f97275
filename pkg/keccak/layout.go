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
	"slices"
)

// GroupId identifies one of the physical groups of cells making up a row
// container.
type GroupId uint8

// The groups of a row container, in canonical order.
const (
	HASH_INDEX_GROUP GroupId = iota
	STEP_INDEX_GROUP
	MODE_FLAGS_GROUP
	PAD_BYTES_FLAGS_GROUP
	PAD_SUFFIX_GROUP
	ROUND_CONSTANTS_GROUP
	CURR_GROUP
	NEXT_GROUP
	// NUM_GROUPS is the number of groups in a row container.
	NUM_GROUPS
)

// Group describes a contiguous run of cells within the canonical ordering of a
// row container.
type Group struct {
	Name  string
	Width uint
}

// Groups is the schema descriptor for a row container.  This single table
// determines both the canonical order in which cells are flattened, and the
// order in which they are drained back when reconstructing a container.
var Groups = [NUM_GROUPS]Group{
	{"hash_index", 1},
	{"step_index", 1},
	{"mode_flags", MODE_FLAGS_COLS_LENGTH},
	{"pad_bytes_flags", RATE_IN_BYTES},
	{"pad_suffix", SUFFIX_COLS_LENGTH},
	{"round_constants", QUARTERS},
	{"curr", ZKVM_KECCAK_COLS_CURR},
	{"next", ZKVM_KECCAK_COLS_NEXT},
}

// Phase identifies which kind of step a cell is meaningful for.  Cells of
// different phases may share physical storage in the current-row region, since
// a given row is either a round step or a sponge step, never both.
type Phase uint8

const (
	// SHARED cells are meaningful on every row.
	SHARED Phase = iota
	// ROUND_PHASE cells are meaningful only on round steps.
	ROUND_PHASE
	// SPONGE_PHASE cells are meaningful only on sponge (absorb / squeeze)
	// steps.
	SPONGE_PHASE
)

// PHASES lists the phases a row can be in.
var PHASES = []Phase{ROUND_PHASE, SPONGE_PHASE}

func (p Phase) String() string {
	switch p {
	case SHARED:
		return "shared"
	case ROUND_PHASE:
		return "round"
	case SPONGE_PHASE:
		return "sponge"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Includes determines whether cells of a given phase are live on a row in this
// phase.
func (p Phase) Includes(other Phase) bool {
	return other == SHARED || other == p
}

// Slot captures where the cells of a given column kind physically live.
type Slot struct {
	// Group holding the cells.
	Group GroupId
	// Offset of the first cell within its group.
	Offset uint
	// Number of cells (i.e. the bound on sub-indices).
	Width uint
	// Indexed indicates the kind carries a sub-index.
	Indexed bool
	// Phase for which these cells are meaningful.
	Phase Phase
}

// Layout is the offset table mapping every column kind to its physical slot.
var Layout = [NUM_KINDS]Slot{
	HASH_INDEX:         {HASH_INDEX_GROUP, 0, 1, false, SHARED},
	STEP_INDEX:         {STEP_INDEX_GROUP, 0, 1, false, SHARED},
	FLAG_ROUND:         {MODE_FLAGS_GROUP, FLAG_ROUND_OFFSET, 1, false, SHARED},
	FLAG_ABSORB:        {MODE_FLAGS_GROUP, FLAG_ABSORB_OFFSET, 1, false, SHARED},
	FLAG_SQUEEZE:       {MODE_FLAGS_GROUP, FLAG_SQUEEZE_OFFSET, 1, false, SHARED},
	FLAG_ROOT:          {MODE_FLAGS_GROUP, FLAG_ROOT_OFFSET, 1, false, SHARED},
	PAD_LENGTH:         {MODE_FLAGS_GROUP, FLAG_PAD_LENGTH_OFFSET, 1, false, SHARED},
	INV_PAD_LENGTH:     {MODE_FLAGS_GROUP, FLAG_INV_PAD_LENGTH_OFFSET, 1, false, SHARED},
	TWO_TO_PAD:         {MODE_FLAGS_GROUP, FLAG_TWO_TO_PAD_OFFSET, 1, false, SHARED},
	PAD_BYTES_FLAGS:    {PAD_BYTES_FLAGS_GROUP, 0, RATE_IN_BYTES, true, SHARED},
	PAD_SUFFIX:         {PAD_SUFFIX_GROUP, 0, SUFFIX_COLS_LENGTH, true, SHARED},
	ROUND_CONSTANTS:    {ROUND_CONSTANTS_GROUP, 0, QUARTERS, true, SHARED},
	INPUT:              {CURR_GROUP, THETA_STATE_A_OFF, STATE_LEN, true, SHARED},
	THETA_SHIFTS_C:     {CURR_GROUP, THETA_SHIFTS_C_OFF, THETA_SHIFTS_C_LEN, true, ROUND_PHASE},
	THETA_DENSE_C:      {CURR_GROUP, THETA_DENSE_C_OFF, THETA_DENSE_C_LEN, true, ROUND_PHASE},
	THETA_QUOTIENT_C:   {CURR_GROUP, THETA_QUOTIENT_C_OFF, THETA_QUOTIENT_C_LEN, true, ROUND_PHASE},
	THETA_REMAINDER_C:  {CURR_GROUP, THETA_REMAINDER_C_OFF, THETA_REMAINDER_C_LEN, true, ROUND_PHASE},
	THETA_DENSE_ROT_C:  {CURR_GROUP, THETA_DENSE_ROT_C_OFF, THETA_DENSE_ROT_C_LEN, true, ROUND_PHASE},
	THETA_EXPAND_ROT_C: {CURR_GROUP, THETA_EXPAND_ROT_C_OFF, THETA_EXPAND_ROT_C_LEN, true, ROUND_PHASE},
	PIRHO_SHIFTS_E:     {CURR_GROUP, PIRHO_SHIFTS_E_OFF, PIRHO_SHIFTS_E_LEN, true, ROUND_PHASE},
	PIRHO_DENSE_E:      {CURR_GROUP, PIRHO_DENSE_E_OFF, PIRHO_DENSE_E_LEN, true, ROUND_PHASE},
	PIRHO_QUOTIENT_E:   {CURR_GROUP, PIRHO_QUOTIENT_E_OFF, PIRHO_QUOTIENT_E_LEN, true, ROUND_PHASE},
	PIRHO_REMAINDER_E:  {CURR_GROUP, PIRHO_REMAINDER_E_OFF, PIRHO_REMAINDER_E_LEN, true, ROUND_PHASE},
	PIRHO_DENSE_ROT_E:  {CURR_GROUP, PIRHO_DENSE_ROT_E_OFF, PIRHO_DENSE_ROT_E_LEN, true, ROUND_PHASE},
	PIRHO_EXPAND_ROT_E: {CURR_GROUP, PIRHO_EXPAND_ROT_E_OFF, PIRHO_EXPAND_ROT_E_LEN, true, ROUND_PHASE},
	CHI_SHIFTS_B:       {CURR_GROUP, CHI_SHIFTS_B_OFF, CHI_SHIFTS_B_LEN, true, ROUND_PHASE},
	CHI_SHIFTS_SUM:     {CURR_GROUP, CHI_SHIFTS_SUM_OFF, CHI_SHIFTS_SUM_LEN, true, ROUND_PHASE},
	SPONGE_NEW_STATE:   {CURR_GROUP, SPONGE_NEW_STATE_OFF, SPONGE_NEW_STATE_LEN, true, SPONGE_PHASE},
	SPONGE_BYTES:       {CURR_GROUP, SPONGE_BYTES_OFF, SPONGE_BYTES_LEN, true, SPONGE_PHASE},
	SPONGE_SHIFTS:      {CURR_GROUP, SPONGE_SHIFTS_OFF, SPONGE_SHIFTS_LEN, true, SPONGE_PHASE},
	OUTPUT:             {NEXT_GROUP, IOTA_STATE_G_OFF, OUTPUT_LEN, true, SHARED},
}

// groupBase holds the canonical position of the first cell of each group.
var groupBase [NUM_GROUPS]uint

func init() {
	if err := CheckLayout(Layout, Groups); err != nil {
		panic(fmt.Sprintf("internal failure (%s)", err.Error()))
	}
	//
	for g, base := 1, uint(0); g < int(NUM_GROUPS); g++ {
		base += Groups[g-1].Width
		groupBase[g] = base
	}
}

// CheckLayout checks that a given offset table is well-formed with respect to
// a given schema descriptor.  Specifically, for every phase, the slots live in
// that phase must tile each group contiguously from offset zero without
// overlapping or exceeding the group's width.  Furthermore, every cell of every
// group must be live in at least one phase, and the group widths must sum to
// the declared width of a row container.
func CheckLayout(layout [NUM_KINDS]Slot, groups [NUM_GROUPS]Group) error {
	var (
		total uint
		// Maximum extent covered in any phase, per group.
		covered [NUM_GROUPS]uint
	)
	//
	for _, g := range groups {
		total += g.Width
	}
	//
	if total != ZKVM_KECCAK_COLS_LENGTH {
		return fmt.Errorf("groups have combined width %d, expected %d", total, ZKVM_KECCAK_COLS_LENGTH)
	}
	//
	for k, slot := range layout {
		if slot.Group >= NUM_GROUPS {
			return fmt.Errorf("%s assigned to unknown group %d", Kind(k), slot.Group)
		} else if slot.Width == 0 || (!slot.Indexed && slot.Width != 1) {
			return fmt.Errorf("%s has invalid width %d", Kind(k), slot.Width)
		}
	}
	//
	for _, phase := range PHASES {
		for g := range groups {
			extent, err := checkPhaseGroup(layout, phase, GroupId(g))
			if err != nil {
				return err
			} else if extent > groups[g].Width {
				return fmt.Errorf("%s cells in group %s extend to %d, exceeding width %d",
					phase, groups[g].Name, extent, groups[g].Width)
			}
			//
			covered[g] = max(covered[g], extent)
		}
	}
	//
	for g, extent := range covered {
		if extent != groups[g].Width {
			return fmt.Errorf("group %s has unused cells [%d..%d)", groups[g].Name, extent, groups[g].Width)
		}
	}
	//
	return nil
}

// Check the slots live in a given phase tile a given group, returning the
// extent which they cover.
func checkPhaseGroup(layout [NUM_KINDS]Slot, phase Phase, group GroupId) (uint, error) {
	var (
		kinds []Kind
		// Next expected offset
		cursor uint
	)
	//
	for k, slot := range layout {
		if slot.Group == group && phase.Includes(slot.Phase) {
			kinds = append(kinds, Kind(k))
		}
	}
	// Sort kinds by offset
	slices.SortFunc(kinds, func(l, r Kind) int {
		return int(layout[l].Offset) - int(layout[r].Offset)
	})
	//
	for _, k := range kinds {
		slot := layout[k]
		//
		if slot.Offset < cursor {
			return 0, fmt.Errorf("%s cell %s at offset %d overlaps previous cells (up to %d)", phase, k, slot.Offset,
				cursor)
		} else if slot.Offset > cursor {
			return 0, fmt.Errorf("%s cells leave gap [%d..%d) before %s", phase, cursor, slot.Offset, k)
		}
		//
		cursor += slot.Width
	}
	//
	return cursor, nil
}

// Position returns the canonical position of a given column's cell within the
// flattened form of a row container.  This panics if the column's sub-index is
// out-of-bounds.
func Position(col Column) uint {
	slot := slotOf(col)
	//
	return groupBase[slot.Group] + slot.Offset + col.Index
}

// AllColumns returns every column live on a row of the given phase, ordered by
// their canonical position.
func AllColumns(phase Phase) []Column {
	var columns []Column
	//
	for k, slot := range Layout {
		if phase.Includes(slot.Phase) {
			for i := uint(0); i < slot.Width; i++ {
				columns = append(columns, Column{Kind(k), i})
			}
		}
	}
	//
	slices.SortFunc(columns, func(l, r Column) int {
		return int(Position(l)) - int(Position(r))
	})
	//
	return columns
}

// Lookup the slot for a given column, checking its sub-index is within bounds.
func slotOf(col Column) Slot {
	if col.Kind >= NUM_KINDS {
		panic(fmt.Sprintf("unknown column kind (%d)", uint8(col.Kind)))
	}
	//
	slot := Layout[col.Kind]
	//
	if col.Index >= slot.Width {
		panic(fmt.Sprintf("column %s out-of-bounds (width %d)", col, slot.Width))
	}
	//
	return slot
}
