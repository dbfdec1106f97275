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
// Package gadget lowers runtime table constraints into gnark circuits, such that
// the gating of runtime tables can be checked in-circuit.
package gadget

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/go-keccak-layout/pkg/expr"
	"github.com/consensys/go-keccak-layout/pkg/runtime"
	"github.com/consensys/go-keccak-layout/pkg/util/field"
	"github.com/consensys/go-keccak-layout/pkg/util/field/bls12_377"
)

// Cells resolves a symbolic cell reference to a circuit variable.
type Cells[C any] func(column C, row expr.Row) frontend.Variable

// Lower translates a given expression into a circuit variable, using a given
// mapping for its cells.
func Lower[C any, F field.Element[F]](api frontend.API, e expr.Expr[C, F], cells Cells[C]) frontend.Variable {
	switch e := e.(type) {
	case *expr.Add[C, F]:
		return lowerNary(api, e.Args, cells, api.Add, 0)
	case *expr.Constant[C, F]:
		return lowerConstant(e.Value)
	case *expr.Cell[C, F]:
		return cells(e.Column, e.Row)
	case *expr.Mul[C, F]:
		return lowerNary(api, e.Args, cells, api.Mul, 1)
	case *expr.Sub[C, F]:
		return lowerNary(api, e.Args, cells, api.Sub, 0)
	default:
		name := reflect.TypeOf(e).String()
		panic(fmt.Sprintf("unknown expression \"%s\"", name))
	}
}

type naryOp func(frontend.Variable, frontend.Variable, ...frontend.Variable) frontend.Variable

func lowerNary[C any, F field.Element[F]](api frontend.API, args []expr.Expr[C, F], cells Cells[C], op naryOp,
	unit int) frontend.Variable {
	switch len(args) {
	case 0:
		return unit
	case 1:
		return Lower(api, args[0], cells)
	}
	//
	var (
		lhs  = Lower(api, args[0], cells)
		rhs  = Lower(api, args[1], cells)
		rest = make([]frontend.Variable, len(args)-2)
	)
	//
	for i, arg := range args[2:] {
		rest[i] = Lower(api, arg, cells)
	}
	//
	return op(lhs, rhs, rest...)
}

func lowerConstant[F field.Element[F]](val F) frontend.Variable {
	var (
		text     = val.Text(10)
		bigVal   = new(big.Int)
		_, valid = bigVal.SetString(text, 10)
	)
	//
	if !valid {
		panic(fmt.Sprintf("invalid constant %s", text))
	}
	//
	return bigVal
}

// RuntimeGateCircuit checks the runtime table constraints over a fixed number
// of rows of the main circuit.
type RuntimeGateCircuit struct {
	Table    []frontend.Variable
	Selector []frontend.Variable
}

// NewRuntimeGateCircuit constructs a circuit (i.e. a shape without any
// assignment) for a given number of rows.
func NewRuntimeGateCircuit(rows uint) *RuntimeGateCircuit {
	return &RuntimeGateCircuit{
		Table:    make([]frontend.Variable, rows),
		Selector: make([]frontend.Variable, rows),
	}
}

// Assign constructs an assignment of the circuit from given rows.
func Assign(rows []runtime.Row[bls12_377.Element]) *RuntimeGateCircuit {
	var circuit = NewRuntimeGateCircuit(uint(len(rows)))
	//
	for i, row := range rows {
		circuit.Table[i] = lowerConstant(row[runtime.LOOKUP_RUNTIME_TABLE])
		circuit.Selector[i] = lowerConstant(row[runtime.LOOKUP_RUNTIME_SELECTOR])
	}
	//
	return circuit
}

// Define implementation for the frontend.Circuit interface.
func (p *RuntimeGateCircuit) Define(api frontend.API) error {
	if len(p.Table) != len(p.Selector) {
		return fmt.Errorf("inconsistent rows (%d tables vs %d selectors)", len(p.Table), len(p.Selector))
	}
	//
	var constraints = runtime.Constraints[bls12_377.Element]()
	//
	for i := range p.Table {
		cells := p.rowCells(uint(i))
		//
		for _, c := range constraints {
			api.AssertIsEqual(Lower(api, c, cells), 0)
		}
	}
	//
	return nil
}

func (p *RuntimeGateCircuit) rowCells(i uint) Cells[runtime.Column] {
	return func(column runtime.Column, row expr.Row) frontend.Variable {
		var index = i
		//
		if row == expr.Next {
			index++
		}
		//
		if index >= uint(len(p.Table)) {
			panic(fmt.Sprintf("row %d out-of-bounds", index))
		}
		//
		switch column {
		case runtime.LOOKUP_RUNTIME_TABLE:
			return p.Table[index]
		case runtime.LOOKUP_RUNTIME_SELECTOR:
			return p.Selector[index]
		default:
			panic(fmt.Sprintf("unknown column %s", column))
		}
	}
}
