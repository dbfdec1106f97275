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
package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ArrayIter_01(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3})
	//
	assert.Equal(t, uint(3), iter.Count())
	assert.True(t, iter.HasNext())
	assert.Equal(t, uint(1), iter.Next())
	assert.Equal(t, uint(2), iter.Count())
	assert.Equal(t, []uint{2, 3}, iter.Collect())
	assert.False(t, iter.HasNext())
}

func Test_ArrayIter_02(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3})
	clone := iter.Clone()
	//
	iter.Next()
	// Clone is unaffected
	assert.Equal(t, uint(3), clone.Count())
	assert.Equal(t, []uint{1, 2, 3}, clone.Collect())
}

func Test_Concat_01(t *testing.T) {
	iter := Concat(NewArrayIterator([]uint{1}), NewArrayIterator[uint](nil), NewArrayIterator([]uint{2, 3}))
	//
	assert.Equal(t, uint(3), iter.Count())
	assert.Equal(t, []uint{1, 2, 3}, iter.Collect())
}

func Test_Concat_02(t *testing.T) {
	var (
		iter  = Concat(NewArrayIterator([]uint{1, 2}), NewArrayIterator([]uint{3}))
		items []uint
	)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	assert.Equal(t, []uint{1, 2, 3}, items)
	assert.Equal(t, uint(0), Concat[uint]().Count())
}
