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
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  The first row
// added is treated as the header, and is separated from the body by a rule.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil}
}

// AddRow appends a row to this table, which must have exactly one value per
// column.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic(fmt.Sprintf("incorrect number of columns (%d vs %d)", len(vals), len(p.widths)))
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(len(val)))
	}
	//
	p.rows = append(p.rows, vals)
}

// Height returns the number of rows in this table, including the header.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(m uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], m)
	}
}

// Write the table to a given writer.
func (p *TablePrinter) Write(w io.Writer) error {
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			if uint(len(col)) > p.widths[j] {
				col = col[0:p.widths[j]]
			}
			//
			fmt.Fprintf(&builder, " %-*s |", int(p.widths[j]), col)
		}
		//
		builder.WriteString("\n")
		// Rule beneath header
		if i == 0 {
			for _, width := range p.widths {
				builder.WriteString(strings.Repeat("-", int(width)+2) + "+")
			}
			//
			builder.WriteString("\n")
		}
		//
		if _, err := io.WriteString(w, builder.String()); err != nil {
			return err
		}
	}
	//
	return nil
}
