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
package binding

import (
	"testing"

	"github.com/consensys/go-keccak-layout/pkg/runtime"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Binding_01(t *testing.T) {
	var (
		minusOne = bls12_377.New(0).Sub(bls12_377.New(1))
		table    = runtime.NewTable(7, bls12_377.New(10), bls12_377.New(20), minusOne)
		host     = FromTable(table)
	)
	//
	assert.Equal(t, int32(7), host.ID)
	require.Len(t, host.Data, 3)
	assert.Equal(t, Limbs{10, 0, 0, 0}, host.Data[0])
	assert.Equal(t, Limbs{20, 0, 0, 0}, host.Data[1])
	// Back again
	back := host.ToTable()
	//
	assert.Equal(t, table.ID, back.ID)
	require.Len(t, back.Data, 3)
	//
	for i := range table.Data {
		assert.True(t, table.Data[i].Equals(back.Data[i]))
	}
}

func Test_Binding_02(t *testing.T) {
	var host HostRuntimeTable
	//
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"data":[[1,0,0,0],[0,1,0,0]]}`), &host))
	//
	table := host.ToTable()
	assert.Equal(t, int32(3), table.ID)
	assert.True(t, table.Data[0].Equals(bls12_377.New(1)))
	assert.Equal(t, "18446744073709551616", table.Data[1].Text(10))
	// Empty tables remain empty
	assert.Equal(t, uint(0), FromTable(runtime.NewTable[bls12_377.Element](1)).ToTable().Len())
}
