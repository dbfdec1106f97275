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

	"github.com/consensys/go-keccak-layout/pkg/util"
)

// ParMap constructs a new row container by applying a given function to every
// cell of an existing container, using (at most) the given number of workers.
// Cells are processed in no particular temporal order, but each result is
// written back to the canonical position of its input.  Hence, the result is
// identical to a sequential map.
func ParMap[S, T any](row *Columns[S], workers uint, fn func(S) T) *Columns[T] {
	return FromFlat(util.ParMap(row.Flatten(), workers, fn))
}

// ParForEach applies a given function to a reference of every cell of a row
// container, using (at most) the given number of workers.  The function is also
// given the canonical position of the cell.  Each cell is visited exactly once,
// hence functions which only write through the given reference need no further
// synchronisation.
func ParForEach[T any](row *Columns[T], workers uint, fn func(uint, *T)) {
	refs := row.Refs()
	//
	util.ParChunks(uint(len(refs)), workers, func(start, end uint) {
		for i := start; i < end; i++ {
			fn(i, refs[i])
		}
	})
}

// ParEach applies a given function to the value of every cell of a row
// container, using (at most) the given number of workers.  The function is also
// given the canonical position of the cell.
func ParEach[T any](row *Columns[T], workers uint, fn func(uint, T)) {
	refs := row.Refs()
	//
	util.ParChunks(uint(len(refs)), workers, func(start, end uint) {
		for i := start; i < end; i++ {
			fn(i, *refs[i])
		}
	})
}

// ParMapRows applies a given function to every row of a trace, using (at most)
// the given number of workers.  Each worker owns the rows it is given, and the
// resulting rows are returned in the same order as the inputs.
func ParMapRows[S, T any](rows []*Columns[S], workers uint, fn func(*Columns[S]) *Columns[T]) []*Columns[T] {
	var stats = util.NewPerfStats()
	//
	results := util.ParMap(rows, workers, fn)
	//
	stats.Log(fmt.Sprintf("Mapping %d rows", len(rows)))
	//
	return results
}
