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
package bls12_377

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the field.Element interface.
type Element struct {
	fr.Element
}

// New constructs an element from a given uint64 value.
func New(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Equals implementation for the Element interface
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fr.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// SetBytes implementation for Element.
func (x Element) SetBytes(bytes []byte) Element {
	x.Element.SetBytes(bytes)
	//
	return x
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// Limbs returns the regular (i.e. non-Montgomery) representation of this
// element as four little endian 64bit limbs.
func (x Element) Limbs() [4]uint64 {
	return x.Element.Bits()
}

// FromLimbs constructs an element from four little endian 64bit limbs, as
// returned by Limbs().  Values beyond the modulus are reduced.
func FromLimbs(limbs [4]uint64) Element {
	var bytes [32]byte
	//
	for i, limb := range limbs {
		binary.BigEndian.PutUint64(bytes[(3-i)*8:], limb)
	}
	//
	return Element{}.SetBytes(bytes[:])
}

func (x Element) String() string {
	return x.Element.String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}

// MarshalJSON encodes an element as a quoted decimal string.
func (x Element) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.Text(10))), nil
}

// UnmarshalJSON decodes an element from either a quoted decimal (or 0x
// prefixed hex) string, or a bare JSON number.
func (x *Element) UnmarshalJSON(data []byte) error {
	var text = string(data)
	//
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	//
	if _, err := x.Element.SetString(text); err != nil {
		return fmt.Errorf("invalid field element %s: %w", string(data), err)
	}
	//
	return nil
}
