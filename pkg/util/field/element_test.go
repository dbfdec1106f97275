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
package field

import (
	"testing"

	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	"github.com/stretchr/testify/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func Test_Element_01(t *testing.T) {
	assert.True(t, Zero[bls12_377.Element]().IsZero())
	assert.True(t, One[bls12_377.Element]().IsOne())
	assert.False(t, One[bls12_377.Element]().IsZero())
	assert.True(t, Uint64[bls12_377.Element](7).Equals(bls12_377.New(7)))
}

func Test_Element_02(t *testing.T) {
	for n := range uint(64) {
		expected := Uint64[bls12_377.Element](uint64(1) << n)
		assert.True(t, TwoPowN[bls12_377.Element](n).Equals(expected), "2^%d", n)
	}
	// Beyond 64 bits
	twoTo136 := TwoPowN[bls12_377.Element](136)
	assert.Equal(t, "87112285931760246646623899502532662132736", twoTo136.Text(10))
}

func Test_Element_03(t *testing.T) {
	var (
		bytes    = []byte{0x01, 0x02, 0x03}
		expected = Uint64[bls12_377.Element](0x010203)
	)
	//
	assert.True(t, FromBigEndianBytes[bls12_377.Element](bytes).Equals(expected))
	assert.True(t, FromBigEndianBytes[bls12_377.Element](nil).IsZero())
}

func Test_Element_04(t *testing.T) {
	vals := Uint64s[bls12_377.Element](0, 1, 2, 3)
	//
	assert.Len(t, vals, 4)
	//
	for i, v := range vals {
		assert.True(t, v.Equals(bls12_377.New(uint64(i))))
	}
}

func Test_Element_05(t *testing.T) {
	x := Uint64[bls12_377.Element](136)
	//
	assert.True(t, x.Mul(x.Inverse()).IsOne())
	assert.True(t, Zero[bls12_377.Element]().Inverse().IsZero())
	assert.True(t, x.Sub(x).IsZero())
	assert.True(t, x.Add(One[bls12_377.Element]()).Equals(bls12_377.New(137)))
}
