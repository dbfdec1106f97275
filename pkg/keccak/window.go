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

	"github.com/consensys/go-keccak-layout/pkg/expr"
)

// Window provides access to the two rows which a constraint can refer to,
// thereby resolving symbolic cell references (i.e. a column plus a current /
// next discriminator) to concrete values.
type Window[T any] struct {
	Curr *Columns[T]
	Next *Columns[T]
}

// Cell implementation for the expr.Env interface.
func (p Window[T]) Cell(col Column, row expr.Row) T {
	switch row {
	case expr.Curr:
		return p.Curr.Get(col)
	case expr.Next:
		if p.Next == nil {
			panic(fmt.Sprintf("no next row available for %s", col))
		}
		//
		return p.Next.Get(col)
	default:
		panic(fmt.Sprintf("unknown row %s", row))
	}
}
