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

import "fmt"

// Kind identifies a variant of the column selector.  Some kinds denote a
// single cell (e.g. HASH_INDEX), whilst others denote a group of cells which
// are distinguished by a sub-index (e.g. PAD_BYTES_FLAGS).
type Kind uint8

// The complete (and closed) set of column kinds.  The order here has no
// bearing on the physical layout, which is determined solely by Layout.
const (
	HASH_INDEX Kind = iota
	STEP_INDEX
	FLAG_ROUND
	FLAG_ABSORB
	FLAG_SQUEEZE
	FLAG_ROOT
	PAD_LENGTH
	INV_PAD_LENGTH
	TWO_TO_PAD
	PAD_BYTES_FLAGS
	PAD_SUFFIX
	ROUND_CONSTANTS
	INPUT
	THETA_SHIFTS_C
	THETA_DENSE_C
	THETA_QUOTIENT_C
	THETA_REMAINDER_C
	THETA_DENSE_ROT_C
	THETA_EXPAND_ROT_C
	PIRHO_SHIFTS_E
	PIRHO_DENSE_E
	PIRHO_QUOTIENT_E
	PIRHO_REMAINDER_E
	PIRHO_DENSE_ROT_E
	PIRHO_EXPAND_ROT_E
	CHI_SHIFTS_B
	CHI_SHIFTS_SUM
	SPONGE_NEW_STATE
	SPONGE_BYTES
	SPONGE_SHIFTS
	OUTPUT
	// NUM_KINDS is the number of column kinds.
	NUM_KINDS
)

var kindNames = [NUM_KINDS]string{
	"HashIndex", "StepIndex", "FlagRound", "FlagAbsorb", "FlagSqueeze", "FlagRoot", "PadLength", "InvPadLength",
	"TwoToPad", "PadBytesFlags", "PadSuffix", "RoundConstants", "Input", "ThetaShiftsC", "ThetaDenseC",
	"ThetaQuotientC", "ThetaRemainderC", "ThetaDenseRotC", "ThetaExpandRotC", "PiRhoShiftsE", "PiRhoDenseE",
	"PiRhoQuotientE", "PiRhoRemainderE", "PiRhoDenseRotE", "PiRhoExpandRotE", "ChiShiftsB", "ChiShiftsSum",
	"SpongeNewState", "SpongeBytes", "SpongeShifts", "Output",
}

// IsIndexed determines whether columns of this kind carry a sub-index.
func (k Kind) IsIndexed() bool {
	return k < NUM_KINDS && Layout[k].Indexed
}

func (k Kind) String() string {
	if k < NUM_KINDS {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Column is a symbolic name for a single cell of a row container.  Columns are
// comparable, hence can be used as map keys and in expressions.
type Column struct {
	Kind  Kind
	Index uint
}

// Width returns the number of cells in the group of columns sharing this
// column's kind.
func (c Column) Width() uint {
	return Layout[c.Kind].Width
}

func (c Column) String() string {
	if c.Kind.IsIndexed() {
		return fmt.Sprintf("%s[%d]", c.Kind, c.Index)
	}
	//
	return c.Kind.String()
}

// ============================================================================
// Constructors
// ============================================================================

// HashIndex identifies the hash (i.e. preimage) to which a row belongs.
func HashIndex() Column { return Column{HASH_INDEX, 0} }

// StepIndex identifies the step of a hash to which a row belongs.
func StepIndex() Column { return Column{STEP_INDEX, 0} }

// FlagRound holds the round number [0..24) of a round step.
func FlagRound() Column { return Column{FLAG_ROUND, 0} }

// FlagAbsorb is 1 for an absorb step, 0 otherwise.
func FlagAbsorb() Column { return Column{FLAG_ABSORB, 0} }

// FlagSqueeze is 1 for a squeeze step, 0 otherwise.
func FlagSqueeze() Column { return Column{FLAG_SQUEEZE, 0} }

// FlagRoot is 1 for the first absorb of a hash, 0 otherwise.
func FlagRoot() Column { return Column{FLAG_ROOT, 0} }

// PadLength holds the number of padding bytes [1..=136] of the final block, or
// 0 for any other block.
func PadLength() Column { return Column{PAD_LENGTH, 0} }

// InvPadLength holds the inverse of PadLength when PadLength != 0.
func InvPadLength() Column { return Column{INV_PAD_LENGTH, 0} }

// TwoToPad holds 2^PadLength.
func TwoToPad() Column { return Column{TWO_TO_PAD, 0} }

// PadBytesFlags identifies the ith of 136 boolean flags marking padding bytes.
func PadBytesFlags(i uint) Column { return Column{PAD_BYTES_FLAGS, i} }

// PadSuffix identifies the ith of 5 cells holding the packed padding suffix.
func PadSuffix(i uint) Column { return Column{PAD_SUFFIX, i} }

// RoundConstants identifies the ith quarter of the round constant.
func RoundConstants(i uint) Column { return Column{ROUND_CONSTANTS, i} }

// Input identifies the ith quarter of the state at the start of a step (either
// the theta input state A of a round, or the old state of a sponge).
func Input(i uint) Column { return Column{INPUT, i} }

// ThetaShiftsC identifies the ith cell of the theta C shifts.
func ThetaShiftsC(i uint) Column { return Column{THETA_SHIFTS_C, i} }

// ThetaDenseC identifies the ith cell of the dense theta C.
func ThetaDenseC(i uint) Column { return Column{THETA_DENSE_C, i} }

// ThetaQuotientC identifies the ith cell of the theta C quotients.
func ThetaQuotientC(i uint) Column { return Column{THETA_QUOTIENT_C, i} }

// ThetaRemainderC identifies the ith cell of the theta C remainders.
func ThetaRemainderC(i uint) Column { return Column{THETA_REMAINDER_C, i} }

// ThetaDenseRotC identifies the ith cell of the dense rotated theta C.
func ThetaDenseRotC(i uint) Column { return Column{THETA_DENSE_ROT_C, i} }

// ThetaExpandRotC identifies the ith cell of the expanded rotated theta C.
func ThetaExpandRotC(i uint) Column { return Column{THETA_EXPAND_ROT_C, i} }

// PiRhoShiftsE identifies the ith cell of the pi-rho E shifts.
func PiRhoShiftsE(i uint) Column { return Column{PIRHO_SHIFTS_E, i} }

// PiRhoDenseE identifies the ith cell of the dense pi-rho E.
func PiRhoDenseE(i uint) Column { return Column{PIRHO_DENSE_E, i} }

// PiRhoQuotientE identifies the ith cell of the pi-rho E quotients.
func PiRhoQuotientE(i uint) Column { return Column{PIRHO_QUOTIENT_E, i} }

// PiRhoRemainderE identifies the ith cell of the pi-rho E remainders.
func PiRhoRemainderE(i uint) Column { return Column{PIRHO_REMAINDER_E, i} }

// PiRhoDenseRotE identifies the ith cell of the dense rotated pi-rho E.
func PiRhoDenseRotE(i uint) Column { return Column{PIRHO_DENSE_ROT_E, i} }

// PiRhoExpandRotE identifies the ith cell of the expanded rotated pi-rho E.
func PiRhoExpandRotE(i uint) Column { return Column{PIRHO_EXPAND_ROT_E, i} }

// ChiShiftsB identifies the ith cell of the chi B shifts.
func ChiShiftsB(i uint) Column { return Column{CHI_SHIFTS_B, i} }

// ChiShiftsSum identifies the ith cell of the chi shifted sums.
func ChiShiftsSum(i uint) Column { return Column{CHI_SHIFTS_SUM, i} }

// SpongeNewState identifies the ith quarter of the new sponge state.
func SpongeNewState(i uint) Column { return Column{SPONGE_NEW_STATE, i} }

// SpongeBytes identifies the ith byte of the sponge state.
func SpongeBytes(i uint) Column { return Column{SPONGE_BYTES, i} }

// SpongeShifts identifies the ith cell of the sponge shifts.
func SpongeShifts(i uint) Column { return Column{SPONGE_SHIFTS, i} }

// Output identifies the ith quarter of the state at the end of a step (either
// the iota output state G of a round, or the xor state of a sponge).  This
// lives on the next row.
func Output(i uint) Column { return Column{OUTPUT, i} }
