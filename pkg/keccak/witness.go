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

// Quarters splits a 64bit lane into its four 16bit quarters, least significant
// first.
func Quarters(word uint64) [QUARTERS]uint64 {
	var quarters [QUARTERS]uint64
	//
	for i := range quarters {
		quarters[i] = (word >> (16 * i)) & 0xffff
	}
	//
	return quarters
}

// Expand converts a 16bit quarter into its sparse representation, where each
// bit occupies its own nibble.  Thus, bit i of the quarter becomes bit 4*i of
// the result.  This allows several quarters to be xor-ed by simply adding them.
func Expand(quarter uint64) uint64 {
	var sparse uint64
	//
	for i := range 16 {
		sparse |= ((quarter >> i) & 1) << (4 * i)
	}
	//
	return sparse
}

// RoundConstantQuarters returns the (sparse) quarters of the round constant for
// a given round.
func RoundConstantQuarters(round uint) [QUARTERS]uint64 {
	if round >= ROUNDS {
		panic(fmt.Sprintf("round %d out-of-bounds", round))
	}
	//
	quarters := Quarters(ROUND_CONSTANT_VALUES[round])
	//
	for i, q := range quarters {
		quarters[i] = Expand(q)
	}
	//
	return quarters
}

// SetRoundConstants fills the round constant cells of a row for a given round.
func SetRoundConstants[F field.Element[F]](row *Columns[F], round uint) {
	for i, q := range RoundConstantQuarters(round) {
		row.Set(RoundConstants(uint(i)), field.Uint64[F](q))
	}
}

// PadLengthOf determines the number of padding bytes which Keccak appends to a
// message of the given length.  This is always between 1 and RATE_IN_BYTES
// (inclusive).
func PadLengthOf(length uint) uint {
	return RATE_IN_BYTES - (length % RATE_IN_BYTES)
}

// Pad applies the pad10*1 rule to a message, producing a whole number of
// blocks.  The first padding byte is 0x01 and the last has its top bit set
// (giving 0x81 when only one byte of padding is required).
func Pad(message []byte) []byte {
	var (
		padLength = PadLengthOf(uint(len(message)))
		padded    = make([]byte, uint(len(message))+padLength)
	)
	//
	copy(padded, message)
	padded[len(message)] = 0x01
	padded[len(padded)-1] |= 0x80
	//
	return padded
}

// PadSuffixBlocks computes the padding suffix for a given number of padding
// bytes.  That is, the final block of a message consisting solely of its
// padding bytes (all message bytes being zero) is split into chunks of 12, 31,
// 31, 31 and 31 bytes, each of which is read as a big endian value.
func PadSuffixBlocks[F field.Element[F]](padLength uint) [SUFFIX_COLS_LENGTH]F {
	var (
		pad    [RATE_IN_BYTES]byte
		blocks [SUFFIX_COLS_LENGTH]F
		offset uint
	)
	//
	checkPadLength(padLength)
	//
	pad[RATE_IN_BYTES-padLength] = 0x01
	pad[RATE_IN_BYTES-1] |= 0x80
	//
	for i, n := range PAD_SUFFIX_CHUNKS {
		blocks[i] = field.FromBigEndianBytes[F](pad[offset : offset+n])
		offset += n
	}
	//
	return blocks
}

// SetPadding fills the padding metadata cells of the row absorbing the final
// block of a message with the given number of padding bytes.
func SetPadding[F field.Element[F]](row *Columns[F], padLength uint) {
	var (
		length = field.Uint64[F](uint64(padLength))
		one    = field.One[F]()
	)
	//
	checkPadLength(padLength)
	//
	row.Set(PadLength(), length)
	row.Set(InvPadLength(), length.Inverse())
	row.Set(TwoToPad(), field.TwoPowN[F](padLength))
	//
	for i := RATE_IN_BYTES - padLength; i < RATE_IN_BYTES; i++ {
		row.Set(PadBytesFlags(i), one)
	}
	//
	for i, block := range PadSuffixBlocks[F](padLength) {
		row.Set(PadSuffix(uint(i)), block)
	}
}

func checkPadLength(padLength uint) {
	if padLength == 0 || padLength > RATE_IN_BYTES {
		panic(fmt.Sprintf("invalid pad length %d", padLength))
	}
}
