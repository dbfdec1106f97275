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
	"math/big"
	"testing"

	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	"github.com/stretchr/testify/assert"
)

func Test_Quarters_01(t *testing.T) {
	assert.Equal(t, [QUARTERS]uint64{0x8008, 0x8000, 0, 0x8000}, Quarters(0x8000000080008008))
	assert.Equal(t, [QUARTERS]uint64{1, 0, 0, 0}, Quarters(1))
	assert.Equal(t, [QUARTERS]uint64{0xffff, 0xffff, 0xffff, 0xffff}, Quarters(^uint64(0)))
}

func Test_Expand_01(t *testing.T) {
	assert.Equal(t, uint64(0), Expand(0))
	assert.Equal(t, uint64(1), Expand(1))
	assert.Equal(t, uint64(0x10), Expand(2))
	assert.Equal(t, uint64(0x1111111111111111), Expand(0xffff))
	assert.Equal(t, uint64(0x1000000000001000), Expand(0x8008))
}

func Test_RoundConstants_01(t *testing.T) {
	assert.Equal(t, [QUARTERS]uint64{1, 0, 0, 0}, RoundConstantQuarters(0))
	assert.Equal(t, [QUARTERS]uint64{0x1000000000001000, 0x1000000000000000, 0, 0x1000000000000000},
		RoundConstantQuarters(ROUNDS-1))
	assert.Panics(t, func() { RoundConstantQuarters(ROUNDS) })
	//
	row := DefaultColumns[bls12_377.Element]()
	SetRoundConstants(row, 1)
	//
	for i, q := range RoundConstantQuarters(1) {
		assert.True(t, row.Get(RoundConstants(uint(i))).Equals(bls12_377.New(q)))
	}
}

func Test_RoundConstants_02(t *testing.T) {
	assert.Equal(t, uint64(1), ROUND_CONSTANT_VALUES[0])
	assert.Equal(t, uint64(0x8000000080008008), ROUND_CONSTANT_VALUES[ROUNDS-1])
	//
	for r := range uint(ROUNDS) {
		dense := Quarters(ROUND_CONSTANT_VALUES[r])
		//
		for i, q := range RoundConstantQuarters(r) {
			assert.Equal(t, Expand(dense[i]), q, "round %d quarter %d", r, i)
		}
	}
}

func Test_Pad_01(t *testing.T) {
	assert.Equal(t, uint(RATE_IN_BYTES), PadLengthOf(0))
	assert.Equal(t, uint(1), PadLengthOf(135))
	assert.Equal(t, uint(RATE_IN_BYTES), PadLengthOf(136))
	assert.Equal(t, uint(2), PadLengthOf(270))
	// Empty message
	padded := Pad(nil)
	assert.Len(t, padded, RATE_IN_BYTES)
	assert.Equal(t, byte(0x01), padded[0])
	assert.Equal(t, byte(0x80), padded[RATE_IN_BYTES-1])
	// Single byte of padding
	padded = Pad(make([]byte, RATE_IN_BYTES-1))
	assert.Len(t, padded, RATE_IN_BYTES)
	assert.Equal(t, byte(0x81), padded[RATE_IN_BYTES-1])
	// Full block of padding
	padded = Pad([]byte("abc"))
	assert.Equal(t, []byte{'a', 'b', 'c', 0x01}, padded[:4])
	assert.Len(t, Pad(make([]byte, RATE_IN_BYTES)), 2*RATE_IN_BYTES)
}

func Test_Padding_01(t *testing.T) {
	row := DefaultColumns[bls12_377.Element]()
	SetPadding(row, 1)
	//
	assert.True(t, row.Get(PadLength()).Equals(bls12_377.New(1)))
	assert.True(t, row.Get(InvPadLength()).IsOne())
	assert.True(t, row.Get(TwoToPad()).Equals(bls12_377.New(2)))
	checkPadFlags(t, row, 1)
	// Only the final byte (0x81) is padding
	checkSuffix(t, row, 0, 0, 0, 0, 0x81)
}

func Test_Padding_02(t *testing.T) {
	row := DefaultColumns[bls12_377.Element]()
	SetPadding(row, RATE_IN_BYTES)
	//
	assert.True(t, row.Get(PadLength()).Mul(row.Get(InvPadLength())).IsOne())
	assert.Equal(t, "87112285931760246646623899502532662132736", row.Get(TwoToPad()).Text(10))
	checkPadFlags(t, row, RATE_IN_BYTES)
	// Leading 0x01 followed by 11 zero bytes gives 2^88
	assert.Equal(t, "309485009821345068724781056", row.Get(PadSuffix(0)).Text(10))
	//
	for i := uint(1); i < SUFFIX_COLS_LENGTH-1; i++ {
		assert.True(t, row.Get(PadSuffix(i)).IsZero())
	}
	//
	assert.True(t, row.Get(PadSuffix(SUFFIX_COLS_LENGTH-1)).Equals(bls12_377.New(0x80)))
}

func Test_Padding_03(t *testing.T) {
	row := DefaultColumns[bls12_377.Element]()
	// Padding starts at the final byte of the third suffix chunk
	SetPadding(row, 63)
	//
	checkPadFlags(t, row, 63)
	checkSuffix(t, row, 0, 0, 1, 0, 0x80)
	//
	assert.Panics(t, func() { SetPadding(row, 0) })
	assert.Panics(t, func() { SetPadding(row, RATE_IN_BYTES+1) })
}

func Test_Padding_04(t *testing.T) {
	// Suffix chunks cover the rate exactly
	var total uint
	//
	for _, n := range PAD_SUFFIX_CHUNKS {
		total += n
	}
	//
	assert.Equal(t, uint(RATE_IN_BYTES), total)
}

func Test_Padding_05(t *testing.T) {
	for n := uint(1); n <= RATE_IN_BYTES; n++ {
		row := DefaultColumns[bls12_377.Element]()
		SetPadding(row, n)
		//
		expected := new(big.Int).Lsh(big.NewInt(1), n)
		assert.Equal(t, expected.String(), row.Get(TwoToPad()).Text(10), "pad length %d", n)
	}
}

func checkPadFlags(t *testing.T, row *Columns[bls12_377.Element], padLength uint) {
	for i := range uint(RATE_IN_BYTES) {
		flag := row.Get(PadBytesFlags(i))
		//
		if i >= RATE_IN_BYTES-padLength {
			assert.True(t, flag.IsOne(), "flag %d", i)
		} else {
			assert.True(t, flag.IsZero(), "flag %d", i)
		}
	}
}

func checkSuffix(t *testing.T, row *Columns[bls12_377.Element], expected ...uint64) {
	for i, v := range expected {
		actual := row.Get(PadSuffix(uint(i)))
		assert.True(t, actual.Equals(bls12_377.New(v)), "suffix %d is %s (expected %d)", i, actual, v)
	}
}
