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

// Dimensions of the Keccak-f[1600] permutation, as arithmetized.  Each 64bit
// lane of the 5x5 state is held as four 16bit quarters.
const (
	// DIM is the side length of the Keccak state.
	DIM = 5
	// QUARTERS is the number of 16bit quarters per 64bit lane.
	QUARTERS = 4
	// ROUNDS is the number of rounds of Keccak-f[1600].
	ROUNDS = 24
	// SHIFTS is the number of shifted copies used to decompose a sparse word.
	SHIFTS = 4
	// RATE_IN_BYTES is the number of bytes absorbed per block (1088 bits).
	RATE_IN_BYTES = 1088 / 8
	// CAPACITY_IN_BYTES is the number of bytes of capacity (512 bits).
	CAPACITY_IN_BYTES = 512 / 8
	// STATE_LEN is the number of quarters in the state.
	STATE_LEN = QUARTERS * DIM * DIM
	// SHIFTS_LEN is the number of cells for the shifts of a full state.
	SHIFTS_LEN = SHIFTS * STATE_LEN
	// HASH_BYTES is the length of a Keccak-256 digest.
	HASH_BYTES = 32
)

// Widths of the groups making up a row container.
const (
	// MODE_FLAGS_COLS_LENGTH is the number of mode flag cells.
	MODE_FLAGS_COLS_LENGTH = 7
	// SUFFIX_COLS_LENGTH is the number of padding suffix cells.
	SUFFIX_COLS_LENGTH = 5
	// ZKVM_KECCAK_COLS_CURR is the width of the current-row region.
	ZKVM_KECCAK_COLS_CURR = CHI_SHIFTS_SUM_OFF + SHIFTS_LEN
	// ZKVM_KECCAK_COLS_NEXT is the width of the next-row region.
	ZKVM_KECCAK_COLS_NEXT = STATE_LEN
	// ZKVM_KECCAK_COLS_LENGTH is the total number of cells in a row container.
	ZKVM_KECCAK_COLS_LENGTH = ZKVM_KECCAK_COLS_CURR + ZKVM_KECCAK_COLS_NEXT + QUARTERS + RATE_IN_BYTES +
		SUFFIX_COLS_LENGTH + MODE_FLAGS_COLS_LENGTH + 2
)

// Offsets of the individual mode flags.
const (
	FLAG_ROUND_OFFSET          = 0
	FLAG_ABSORB_OFFSET         = 1
	FLAG_SQUEEZE_OFFSET        = 2
	FLAG_ROOT_OFFSET           = 3
	FLAG_PAD_LENGTH_OFFSET     = 4
	FLAG_INV_PAD_LENGTH_OFFSET = 5
	FLAG_TWO_TO_PAD_OFFSET     = 6
)

// Offsets (and lengths) within the current-row region for a round step.
const (
	THETA_STATE_A_OFF      = 0
	THETA_STATE_A_LEN      = STATE_LEN
	THETA_SHIFTS_C_OFF     = THETA_STATE_A_OFF + THETA_STATE_A_LEN
	THETA_SHIFTS_C_LEN     = SHIFTS * DIM * QUARTERS
	THETA_DENSE_C_OFF      = THETA_SHIFTS_C_OFF + THETA_SHIFTS_C_LEN
	THETA_DENSE_C_LEN      = QUARTERS * DIM
	THETA_QUOTIENT_C_OFF   = THETA_DENSE_C_OFF + THETA_DENSE_C_LEN
	THETA_QUOTIENT_C_LEN   = DIM
	THETA_REMAINDER_C_OFF  = THETA_QUOTIENT_C_OFF + THETA_QUOTIENT_C_LEN
	THETA_REMAINDER_C_LEN  = QUARTERS * DIM
	THETA_DENSE_ROT_C_OFF  = THETA_REMAINDER_C_OFF + THETA_REMAINDER_C_LEN
	THETA_DENSE_ROT_C_LEN  = QUARTERS * DIM
	THETA_EXPAND_ROT_C_OFF = THETA_DENSE_ROT_C_OFF + THETA_DENSE_ROT_C_LEN
	THETA_EXPAND_ROT_C_LEN = QUARTERS * DIM
	PIRHO_SHIFTS_E_OFF     = THETA_EXPAND_ROT_C_OFF + THETA_EXPAND_ROT_C_LEN
	PIRHO_SHIFTS_E_LEN     = SHIFTS_LEN
	PIRHO_DENSE_E_OFF      = PIRHO_SHIFTS_E_OFF + PIRHO_SHIFTS_E_LEN
	PIRHO_DENSE_E_LEN      = STATE_LEN
	PIRHO_QUOTIENT_E_OFF   = PIRHO_DENSE_E_OFF + PIRHO_DENSE_E_LEN
	PIRHO_QUOTIENT_E_LEN   = STATE_LEN
	PIRHO_REMAINDER_E_OFF  = PIRHO_QUOTIENT_E_OFF + PIRHO_QUOTIENT_E_LEN
	PIRHO_REMAINDER_E_LEN  = STATE_LEN
	PIRHO_DENSE_ROT_E_OFF  = PIRHO_REMAINDER_E_OFF + PIRHO_REMAINDER_E_LEN
	PIRHO_DENSE_ROT_E_LEN  = STATE_LEN
	PIRHO_EXPAND_ROT_E_OFF = PIRHO_DENSE_ROT_E_OFF + PIRHO_DENSE_ROT_E_LEN
	PIRHO_EXPAND_ROT_E_LEN = STATE_LEN
	CHI_SHIFTS_B_OFF       = PIRHO_EXPAND_ROT_E_OFF + PIRHO_EXPAND_ROT_E_LEN
	CHI_SHIFTS_B_LEN       = SHIFTS_LEN
	CHI_SHIFTS_SUM_OFF     = CHI_SHIFTS_B_OFF + CHI_SHIFTS_B_LEN
	CHI_SHIFTS_SUM_LEN     = SHIFTS_LEN
)

// Offsets (and lengths) within the current-row region for a sponge step.
const (
	SPONGE_OLD_STATE_OFF = 0
	SPONGE_OLD_STATE_LEN = STATE_LEN
	SPONGE_NEW_STATE_OFF = SPONGE_OLD_STATE_OFF + SPONGE_OLD_STATE_LEN
	SPONGE_NEW_STATE_LEN = STATE_LEN
	SPONGE_BYTES_OFF     = SPONGE_NEW_STATE_OFF + SPONGE_NEW_STATE_LEN
	SPONGE_BYTES_LEN     = 2 * STATE_LEN
	SPONGE_SHIFTS_OFF    = SPONGE_BYTES_OFF + SPONGE_BYTES_LEN
	SPONGE_SHIFTS_LEN    = SHIFTS_LEN
)

// Offsets within the next-row region.  A round step writes the state after
// iota, whilst a sponge step writes the xor of the old and new states.
const (
	IOTA_STATE_G_OFF     = 0
	SPONGE_XOR_STATE_OFF = 0
	OUTPUT_LEN           = STATE_LEN
)

// PAD_SUFFIX_CHUNKS gives the number of padding bytes packed into each of the
// padding suffix cells.  These sum to RATE_IN_BYTES, and the first chunk is
// shorter so that every chunk fits comfortably within a field element.
var PAD_SUFFIX_CHUNKS = [SUFFIX_COLS_LENGTH]uint{12, 31, 31, 31, 31}

// ROUND_CONSTANT_VALUES for the iota step of each round of Keccak-f[1600].
var ROUND_CONSTANT_VALUES = [ROUNDS]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}
