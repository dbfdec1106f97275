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
package bls12_377

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Limbs_01(t *testing.T) {
	assert.Equal(t, [4]uint64{7, 0, 0, 0}, New(7).Limbs())
	assert.True(t, FromLimbs([4]uint64{7, 0, 0, 0}).Equals(New(7)))
}

func Test_Limbs_02(t *testing.T) {
	// 2^64 + 1
	var x = New(1 << 32).Mul(New(1 << 32)).Add(New(1))
	//
	assert.Equal(t, [4]uint64{1, 1, 0, 0}, x.Limbs())
	assert.True(t, FromLimbs(x.Limbs()).Equals(x))
}

func Test_Limbs_03(t *testing.T) {
	// -1 uses (almost) all limbs
	var x = New(0).Sub(New(1))
	//
	assert.True(t, FromLimbs(x.Limbs()).Equals(x))
}

func Test_Json_01(t *testing.T) {
	var (
		elems = []Element{New(0), New(1), New(0).Sub(New(1))}
		out   []Element
	)
	//
	bytes, err := json.Marshal(elems)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bytes, &out))
	require.Len(t, out, len(elems))
	//
	for i := range elems {
		assert.True(t, elems[i].Equals(out[i]))
	}
}

func Test_Json_02(t *testing.T) {
	var x Element
	// Bare numbers are accepted
	require.NoError(t, json.Unmarshal([]byte("123"), &x))
	assert.True(t, x.Equals(New(123)))
	// As are hex strings
	require.NoError(t, json.Unmarshal([]byte(`"0x10"`), &x))
	assert.True(t, x.Equals(New(16)))
	//
	assert.Error(t, json.Unmarshal([]byte(`"xyz"`), &x))
}
