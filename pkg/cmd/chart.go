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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-keccak-layout/pkg/keccak"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Write an html page with one bar chart per phase, showing how the cells of
// each group are divided between column kinds.
func writeLayoutChart(filename string, phases []keccak.Phase) error {
	page := components.NewPage().SetPageTitle("Keccak trace layout")
	//
	for _, phase := range phases {
		page.AddCharts(newLayoutChart(phase))
	}
	//
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	defer f.Close()
	//
	return page.Render(f)
}

func newLayoutChart(phase keccak.Phase) *charts.Bar {
	var (
		labels []string
		widths []opts.BarData
		total  uint
	)
	//
	for k, slot := range keccak.Layout {
		if phase.Includes(slot.Phase) {
			labels = append(labels, keccak.Kind(k).String())
			widths = append(widths, opts.BarData{Value: slot.Width})
			total += slot.Width
		}
	}
	//
	title := fmt.Sprintf("%s phase", phase)
	subtitle := fmt.Sprintf("%d kinds, %d of %d cells", len(labels), total, keccak.ZKVM_KECCAK_COLS_LENGTH)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("width", widths).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	//
	return bar
}
