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
package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-keccak-layout/pkg/expr"
	"github.com/consensys/go-keccak-layout/pkg/util/field"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type element = bls12_377.Element

func Test_Config_01(t *testing.T) {
	cfg := NewConfig(7, field.Uint64s[element](1, 2, 3)...)
	//
	assert.Equal(t, int32(7), cfg.Id())
	assert.Equal(t, uint(3), cfg.Len())
	assert.False(t, cfg.IsEmpty())
	assert.Equal(t, Spec{ID: 7, Len: 3}, SpecOf(cfg))
	// Compatibility requires matching identifier and length
	assert.True(t, cfg.Compatible(NewTable(7, field.Uint64s[element](10, 20, 30)...)))
	assert.False(t, cfg.Compatible(NewTable(7, field.Uint64s[element](10, 20)...)))
	assert.False(t, cfg.Compatible(NewTable(8, field.Uint64s[element](10, 20, 30)...)))
}

func Test_Config_02(t *testing.T) {
	cfg := NewConfig[element](-1)
	//
	assert.True(t, cfg.IsEmpty())
	assert.Equal(t, Spec{ID: -1, Len: 0}, SpecOf(cfg))
	assert.Equal(t, "{id:-1,len:0}", SpecOf(cfg).String())
}

func Test_Registry_01(t *testing.T) {
	registry := NewRegistry(
		NewConfig(7, field.Uint64s[element](1, 2, 3)...),
		NewConfig(9, field.Uint64s[element](4)...),
	)
	//
	assert.Equal(t, uint(2), registry.Len())
	assert.Equal(t, []Spec{{7, 3}, {9, 1}}, registry.Specs())
	//
	cfg, ok := registry.Lookup(9)
	assert.True(t, ok)
	assert.Equal(t, uint(1), cfg.Len())
	//
	_, ok = registry.Lookup(8)
	assert.False(t, ok)
}

func Test_Registry_02(t *testing.T) {
	registry := NewRegistry(NewConfig(7, field.Uint64s[element](1, 2, 3)...))
	//
	assert.NotPanics(t, func() {
		cfg := registry.Bind(NewTable(7, field.Uint64s[element](10, 20, 30)...))
		assert.Equal(t, int32(7), cfg.Id())
	})
	// Length mismatch is fatal
	assert.Panics(t, func() { registry.Bind(NewTable(7, field.Uint64s[element](10, 20)...)) })
	// As is an unknown table
	assert.Panics(t, func() { registry.Bind(NewTable(8, field.Uint64s[element](10, 20, 30)...)) })
}

func Test_Registry_03(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(NewConfig(7, field.Uint64s[element](1)...), NewConfig(7, field.Uint64s[element](2)...))
	})
}

func Test_Constraint_01(t *testing.T) {
	constraints := Constraints[element]()
	//
	require.Len(t, constraints, 1)
	assert.Equal(t, "(* LookupRuntimeTable LookupRuntimeSelector)", constraints[0].String())
}

func Test_Constraint_02(t *testing.T) {
	var (
		c     = Constraints[element]()[0]
		tests = []struct {
			value    uint64
			selector uint64
			holds    bool
		}{
			{0, 0, true},
			{5, 0, true},
			{0, 1, true},
			{5, 1, false},
			{1, 1, false},
		}
	)
	//
	for _, tt := range tests {
		window := Window[element]{Curr: NewRow(bls12_377.New(tt.value), bls12_377.New(tt.selector))}
		assert.Equal(t, tt.holds, expr.Holds(c, window), "value=%d, selector=%d", tt.value, tt.selector)
	}
}

func Test_Constraint_03(t *testing.T) {
	rows := []Row[element]{
		NewRow(bls12_377.New(10), bls12_377.New(0)),
		NewRow(bls12_377.New(0), bls12_377.New(1)),
		NewRow(bls12_377.New(20), bls12_377.New(1)),
	}
	//
	index, ok := Check(rows[:2])
	assert.True(t, ok)
	assert.Equal(t, uint(0), index)
	//
	index, ok = Check(rows)
	assert.False(t, ok)
	assert.Equal(t, uint(2), index)
	//
	assert.Equal(t, "LookupRuntimeSelector", LOOKUP_RUNTIME_SELECTOR.String())
	assert.Panics(t, func() { Window[element]{}.Cell(LOOKUP_RUNTIME_TABLE, expr.Next) })
}

func Test_Persist_01(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "setup.json")
		setup    = `{"configs":[{"id":7,"first_column":["1","2",3]}],"specs":[{"id":2,"len":5}]}`
	)
	//
	require.NoError(t, os.WriteFile(filename, []byte(setup), 0644))
	//
	s, err := ReadSetupFile[element](filename)
	require.NoError(t, err)
	require.Len(t, s.Configs, 1)
	assert.Equal(t, uint(3), s.Configs[0].Len())
	assert.True(t, s.Configs[0].FirstColumn[2].Equals(bls12_377.New(3)))
	assert.Equal(t, []Spec{{2, 5}, {7, 3}}, s.Specs)
}

func Test_Persist_02(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "table.json")
		table    = NewTable(7, field.Uint64s[element](10, 20, 30)...)
	)
	//
	bytes, err := WriteJSON(table)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filename, bytes, 0644))
	//
	read, err := ReadTableFile[element](filename)
	require.NoError(t, err)
	assert.Equal(t, int32(7), read.ID)
	require.Len(t, read.Data, 3)
	//
	for i := range table.Data {
		assert.True(t, table.Data[i].Equals(read.Data[i]))
	}
	// Malformed
	require.NoError(t, os.WriteFile(filename, []byte(`{"id":"x"}`), 0644))
	_, err = ReadTableFile[element](filename)
	assert.Error(t, err)
	// Missing
	_, err = ReadTableFile[element](filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func Test_Persist_03(t *testing.T) {
	specs := []Spec{{7, 3}, {-2, 0}, {1 << 30, 1 << 20}}
	//
	bytes, err := EncodeSpecs(specs)
	require.NoError(t, err)
	//
	decoded, err := DecodeSpecs(bytes)
	require.NoError(t, err)
	assert.Equal(t, specs, decoded)
	//
	_, err = DecodeSpecs([]byte{0xff})
	assert.Error(t, err)
}

func Test_Persist_04(t *testing.T) {
	// Specifications never expose the first column
	bytes, err := WriteJSON(SpecOf(NewConfig(7, field.Uint64s[element](1, 2, 3)...)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"len":3}`, string(bytes))
}

func Test_Persist_05(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "setup.json")
		setup    = `{"configs":[{"id":7,"first_column":[1,2,3]}],"specs":[{"id":7,"len":3},{"id":2,"len":5},{"id":2,"len":5}]}`
	)
	//
	require.NoError(t, os.WriteFile(filename, []byte(setup), 0644))
	//
	s, err := ReadSetupFile[element](filename)
	require.NoError(t, err)
	assert.Equal(t, []Spec{{7, 3}, {2, 5}}, s.Specs)
	// Repeated tables must agree on their length
	setup = `{"configs":[{"id":7,"first_column":[1,2,3]}],"specs":[{"id":7,"len":4}]}`
	require.NoError(t, os.WriteFile(filename, []byte(setup), 0644))
	//
	_, err = ReadSetupFile[element](filename)
	assert.Error(t, err)
}
