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
	"fmt"

	"github.com/consensys/go-keccak-layout/pkg/expr"
	"github.com/consensys/go-keccak-layout/pkg/util/field"
)

// Column identifies a cell of the main circuit's row which participates in the
// runtime table mechanism.
type Column uint8

const (
	// LOOKUP_RUNTIME_TABLE holds the runtime table value of a row.
	LOOKUP_RUNTIME_TABLE Column = iota
	// LOOKUP_RUNTIME_SELECTOR determines whether a row is switched on (1) or
	// off (0) for the runtime table.
	LOOKUP_RUNTIME_SELECTOR
	// NUM_COLUMNS is the number of runtime table columns.
	NUM_COLUMNS
)

func (c Column) String() string {
	switch c {
	case LOOKUP_RUNTIME_TABLE:
		return "LookupRuntimeTable"
	case LOOKUP_RUNTIME_SELECTOR:
		return "LookupRuntimeSelector"
	default:
		return fmt.Sprintf("Column(%d)", uint8(c))
	}
}

// Constraints returns the constraints gating the runtime table, of which there
// is exactly one:
//
// LookupRuntimeTable * LookupRuntimeSelector == 0
//
// Thus, a row whose selector is on must have a zero runtime table value, and a
// row with a non-zero runtime table value must have its selector off.
func Constraints[F field.Element[F]]() []expr.Expr[Column, F] {
	var (
		table    = expr.NewCell[Column, F](LOOKUP_RUNTIME_TABLE, expr.Curr)
		selector = expr.NewCell[Column, F](LOOKUP_RUNTIME_SELECTOR, expr.Curr)
	)
	//
	return []expr.Expr[Column, F]{table.Mul(selector)}
}

// Row holds the runtime table cells of a single row of the main circuit.
type Row[F any] [NUM_COLUMNS]F

// NewRow constructs a row from its runtime table value and selector.
func NewRow[F any](value F, selector F) Row[F] {
	return Row[F]{value, selector}
}

// Window provides the current (and, optionally, next) row against which
// runtime table constraints are evaluated.
type Window[F any] struct {
	Curr Row[F]
	Next *Row[F]
}

// Cell implementation for the expr.Env interface.
func (p Window[F]) Cell(col Column, row expr.Row) F {
	if col >= NUM_COLUMNS {
		panic(fmt.Sprintf("unknown runtime table column %s", col))
	} else if row == expr.Curr {
		return p.Curr[col]
	} else if p.Next == nil {
		panic(fmt.Sprintf("no next row available for %s", col))
	}
	//
	return p.Next[col]
}

// Check evaluates every runtime table constraint on the given rows, returning
// the index of the first row which violates one (if any).
func Check[F field.Element[F]](rows []Row[F]) (uint, bool) {
	var constraints = Constraints[F]()
	//
	for i, row := range rows {
		var window = Window[F]{Curr: row}
		//
		if i+1 < len(rows) {
			window.Next = &rows[i+1]
		}
		//
		for _, c := range constraints {
			if !expr.Holds(c, window) {
				return uint(i), false
			}
		}
	}
	//
	return 0, true
}
