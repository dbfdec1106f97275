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
package util

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalises a requested number of workers, where zero means "one per
// available CPU".
func Workers(requested uint) uint {
	if requested == 0 {
		return uint(runtime.NumCPU())
	}
	//
	return requested
}

// ParChunks partitions the index range [0,n) into contiguous, non-overlapping
// chunks and executes the given job on each chunk using a bounded pool of
// go-routines.  This returns only once every chunk has completed.  Since
// chunks never overlap, jobs which only write to the positions of their own
// chunk require no further synchronisation.
func ParChunks(n uint, workers uint, job func(start, end uint)) {
	var (
		group errgroup.Group
		// Number of chunks to split into
		nchunks = min(Workers(workers), max(n, 1))
		// Size of each chunk (rounded up)
		size = (n + nchunks - 1) / nchunks
	)
	//
	group.SetLimit(int(nchunks))
	//
	for start := uint(0); start < n; start += size {
		end := min(start+size, n)
		// Dispatch!
		group.Go(func() error {
			job(start, end)
			return nil
		})
	}
	// Wait for everything to complete.  Jobs cannot fail (they panic instead),
	// hence the error is always nil.
	_ = group.Wait()
}

// ParMap applies a given function to every element of an array concurrently,
// writing each result into the same position of a freshly allocated array.
// Thus, the order of the results matches the order of the inputs, regardless
// of the order in which they were computed.
func ParMap[S, T any](items []S, workers uint, fn func(S) T) []T {
	var results = make([]T, len(items))
	//
	ParChunks(uint(len(items)), workers, func(start, end uint) {
		for i := start; i < end; i++ {
			results[i] = fn(items[i])
		}
	})
	//
	return results
}
