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
package expr

import (
	"fmt"

	"github.com/consensys/go-keccak-layout/pkg/util/field"
)

// Row distinguishes the two trace rows which a constraint can refer to.  That
// is, a constraint relating consecutive computation steps reads cells from both
// the current row and the next row.
type Row uint8

const (
	// Curr identifies the row on which a constraint is being evaluated.
	Curr Row = iota
	// Next identifies the row immediately following the current row.
	Next
)

func (r Row) String() string {
	switch r {
	case Curr:
		return "curr"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("row(%d)", uint8(r))
	}
}

// Expr represents a polynomial expression over named trace cells, where C
// identifies the columns and F is the field over which values are computed.
// Expressions are purely symbolic; the Env against which they are evaluated
// resolves each cell to a concrete value.
type Expr[C any, F field.Element[F]] interface {
	fmt.Stringer

	// Add two expressions together, producing a third.
	Add(Expr[C, F]) Expr[C, F]

	// Sub (subtract) one expression from another
	Sub(Expr[C, F]) Expr[C, F]

	// Mul (multiply) two expressions together, producing a third.
	Mul(Expr[C, F]) Expr[C, F]
}

// ============================================================================
// Addition
// ============================================================================

// Add represents the sum over zero or more expressions.
type Add[C any, F field.Element[F]] struct{ Args []Expr[C, F] }

// Add two expressions together, producing a third.
func (p *Add[C, F]) Add(other Expr[C, F]) Expr[C, F] { return &Add[C, F]{[]Expr[C, F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Add[C, F]) Sub(other Expr[C, F]) Expr[C, F] { return &Sub[C, F]{[]Expr[C, F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Add[C, F]) Mul(other Expr[C, F]) Expr[C, F] { return &Mul[C, F]{[]Expr[C, F]{p, other}} }

func (p *Add[C, F]) String() string { return naryString("+", p.Args) }

// ============================================================================
// Subtraction
// ============================================================================

// Sub represents the subtraction over zero or more expressions.
type Sub[C any, F field.Element[F]] struct{ Args []Expr[C, F] }

// Add two expressions together, producing a third.
func (p *Sub[C, F]) Add(other Expr[C, F]) Expr[C, F] { return &Add[C, F]{[]Expr[C, F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Sub[C, F]) Sub(other Expr[C, F]) Expr[C, F] { return &Sub[C, F]{[]Expr[C, F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Sub[C, F]) Mul(other Expr[C, F]) Expr[C, F] { return &Mul[C, F]{[]Expr[C, F]{p, other}} }

func (p *Sub[C, F]) String() string { return naryString("-", p.Args) }

// ============================================================================
// Multiplication
// ============================================================================

// Mul represents the product over zero or more expressions.
type Mul[C any, F field.Element[F]] struct{ Args []Expr[C, F] }

// Add two expressions together, producing a third.
func (p *Mul[C, F]) Add(other Expr[C, F]) Expr[C, F] { return &Add[C, F]{[]Expr[C, F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Mul[C, F]) Sub(other Expr[C, F]) Expr[C, F] { return &Sub[C, F]{[]Expr[C, F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Mul[C, F]) Mul(other Expr[C, F]) Expr[C, F] { return &Mul[C, F]{[]Expr[C, F]{p, other}} }

func (p *Mul[C, F]) String() string { return naryString("*", p.Args) }

// ============================================================================
// Constant
// ============================================================================

// Constant represents a constant value within an expression.
type Constant[C any, F field.Element[F]] struct{ Value F }

// NewConst construct an expression representing a given constant.
func NewConst[C any, F field.Element[F]](val F) Expr[C, F] {
	return &Constant[C, F]{val}
}

// Add two expressions together, producing a third.
func (p *Constant[C, F]) Add(other Expr[C, F]) Expr[C, F] { return &Add[C, F]{[]Expr[C, F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Constant[C, F]) Sub(other Expr[C, F]) Expr[C, F] { return &Sub[C, F]{[]Expr[C, F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Constant[C, F]) Mul(other Expr[C, F]) Expr[C, F] { return &Mul[C, F]{[]Expr[C, F]{p, other}} }

func (p *Constant[C, F]) String() string { return p.Value.Text(10) }

// ============================================================================
// Cell
// ============================================================================

// Cell represents reading the value held in a given column on either the
// current row or the next row.  Suppose we are evaluating a constraint on row
// k=5 which contains the cells "X" and "Y'".  Then, X reads column X at row 5,
// whilst Y' reads column Y at row 6.
type Cell[C any, F field.Element[F]] struct {
	Column C
	Row    Row
}

// NewCell constructs an expression reading a given column on a given row.
func NewCell[C any, F field.Element[F]](column C, row Row) Expr[C, F] {
	return &Cell[C, F]{column, row}
}

// Add two expressions together, producing a third.
func (p *Cell[C, F]) Add(other Expr[C, F]) Expr[C, F] { return &Add[C, F]{[]Expr[C, F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Cell[C, F]) Sub(other Expr[C, F]) Expr[C, F] { return &Sub[C, F]{[]Expr[C, F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Cell[C, F]) Mul(other Expr[C, F]) Expr[C, F] { return &Mul[C, F]{[]Expr[C, F]{p, other}} }

func (p *Cell[C, F]) String() string {
	if p.Row == Next {
		return fmt.Sprintf("%v'", p.Column)
	}
	//
	return fmt.Sprintf("%v", p.Column)
}

func naryString[C any, F field.Element[F]](operator string, exprs []Expr[C, F]) string {
	var rs string

	for _, e := range exprs {
		rs = fmt.Sprintf("%s %s", rs, e.String())
	}

	return fmt.Sprintf("(%s%s)", operator, rs)
}
