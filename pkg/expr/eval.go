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
	"reflect"

	"github.com/consensys/go-keccak-layout/pkg/util/field"
)

// Env provides the values of trace cells against which an expression is
// evaluated.
type Env[C any, F any] interface {
	// Cell returns the value held in the given column on the given row.
	Cell(column C, row Row) F
}

// Eval evaluates a given expression in a given environment.  Sums and
// differences over zero arguments evaluate to zero, whilst products over zero
// arguments evaluate to one.
func Eval[C any, F field.Element[F]](e Expr[C, F], env Env[C, F]) F {
	switch e := e.(type) {
	case *Add[C, F]:
		return evalAdd(e, env)
	case *Constant[C, F]:
		return e.Value
	case *Cell[C, F]:
		return env.Cell(e.Column, e.Row)
	case *Sub[C, F]:
		return evalSub(e, env)
	case *Mul[C, F]:
		return evalMul(e, env)
	default:
		name := reflect.TypeOf(e).String()
		panic(fmt.Sprintf("unknown expression \"%s\"", name))
	}
}

// Holds checks whether a given constraint expression vanishes in a given
// environment.
func Holds[C any, F field.Element[F]](e Expr[C, F], env Env[C, F]) bool {
	return Eval(e, env).IsZero()
}

func evalAdd[C any, F field.Element[F]](e *Add[C, F], env Env[C, F]) F {
	var val = field.Zero[F]()
	//
	for _, arg := range e.Args {
		val = val.Add(Eval(arg, env))
	}
	// Done
	return val
}

func evalMul[C any, F field.Element[F]](e *Mul[C, F], env Env[C, F]) F {
	var val = field.One[F]()
	//
	for _, arg := range e.Args {
		// Can short-circuit evaluation?
		if val.IsZero() {
			break
		}
		//
		val = val.Mul(Eval(arg, env))
	}
	// Done
	return val
}

func evalSub[C any, F field.Element[F]](e *Sub[C, F], env Env[C, F]) F {
	if len(e.Args) == 0 {
		return field.Zero[F]()
	}
	// Evaluate first argument
	val := Eval(e.Args[0], env)
	// Continue evaluating the rest
	for _, arg := range e.Args[1:] {
		val = val.Sub(Eval(arg, env))
	}
	// Done
	return val
}
