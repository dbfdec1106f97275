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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorkers = []uint{0, 1, 2, 5, 64}

func Test_Parallel_01(t *testing.T) {
	row := numberedRow()
	//
	for _, workers := range testWorkers {
		doubled := ParMap(row, workers, func(x uint) uint { return 2 * x })
		//
		for i, v := range doubled.Flatten() {
			assert.Equal(t, uint(2*i), v, "workers=%d", workers)
		}
	}
}

func Test_Parallel_02(t *testing.T) {
	// Changing cell type
	row := numberedRow()
	flags := ParMap(row, 3, func(x uint) bool { return x%2 == 0 })
	//
	assert.True(t, flags.Get(HashIndex()))
	assert.False(t, flags.Get(StepIndex()))
	assert.Equal(t, Position(Output(1))%2 == 0, flags.Get(Output(1)))
}

func Test_Parallel_03(t *testing.T) {
	for _, workers := range testWorkers {
		row := NewColumns[uint](0)
		// Positions given to each cell match canonical order
		ParForEach(row, workers, func(i uint, cell *uint) { *cell = i })
		//
		assert.Equal(t, *numberedRow(), *row, "workers=%d", workers)
	}
}

func Test_Parallel_04(t *testing.T) {
	for _, workers := range testWorkers {
		var (
			sum   atomic.Uint64
			count atomic.Uint64
		)
		//
		ParEach(numberedRow(), workers, func(i uint, cell uint) {
			if i != cell {
				t.Errorf("cell %d visited at position %d", cell, i)
			}
			//
			sum.Add(uint64(cell))
			count.Add(1)
		})
		//
		n := uint64(ZKVM_KECCAK_COLS_LENGTH)
		assert.Equal(t, n, count.Load())
		assert.Equal(t, n*(n-1)/2, sum.Load())
	}
}

func Test_Parallel_05(t *testing.T) {
	var rows = make([]*Columns[uint], 10)
	//
	for i := range rows {
		rows[i] = NewColumns[uint](0)
		rows[i].Set(StepIndex(), uint(i))
	}
	//
	results := ParMapRows(rows, 4, func(row *Columns[uint]) *Columns[uint] {
		return ParMap(row, 1, func(x uint) uint { return x + 1 })
	})
	//
	require.Len(t, results, len(rows))
	//
	for i, row := range results {
		assert.Equal(t, uint(i+1), row.Get(StepIndex()))
		assert.Equal(t, uint(1), row.Get(Output(99)))
	}
}
