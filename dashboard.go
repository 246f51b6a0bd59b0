// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// getPaddedTip adds before and after padding to a tip
func getPaddedTip(tip string) string {
	return " " + tip + " "
}

// heightCharts builds one bar chart per workload for the largest size in rows.
func heightCharts(rows []heightComparison) []*widgets.BarChart {
	largest := 0
	for _, r := range rows {
		largest = max(largest, r.Size)
	}

	scheme := GetColorScheme()
	var charts []*widgets.BarChart
	for _, r := range rows {
		if r.Size != largest {
			continue
		}
		bc := widgets.NewBarChart()
		bc.Title = fmt.Sprintf(" %s, %d keys ", r.Workload, r.Size)
		bc.Labels = []string{"AVL", "BST"}
		bc.Data = []float64{float64(r.AVLHeight), float64(r.BSTHeight)}
		bc.BarWidth = 7
		bc.BarGap = 3
		bc.BarColors = []ui.Color{scheme.Secondary, ui.ColorRed}
		bc.LabelStyles = []ui.Style{StyleText()}
		bc.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
		bc.BorderStyle = StyleBorder(false)
		charts = append(charts, bc)
	}
	return charts
}

func comparisonTable(rows []heightComparison) *widgets.Table {
	tbl := widgets.NewTable()
	tbl.Title = " Heights (nodes on the longest path) "
	tbl.Rows = [][]string{{"workload", "keys", "avl", "bst", "rotations"}}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []string{
			r.Workload, strconv.Itoa(r.Size), strconv.Itoa(r.AVLHeight),
			strconv.Itoa(r.BSTHeight), strconv.Itoa(r.Rotations),
		})
	}
	tbl.TextStyle = StyleText()
	tbl.RowStyles[0] = ui.NewStyle(GetColorScheme().Primary, ui.ColorClear, ui.ModifierBold)
	tbl.BorderStyle = StyleBorder(true)
	tbl.FillRow = true
	return tbl
}

// runDashboard shows the comparison as termui charts until q, esc or ctrl+c.
func runDashboard(rows []heightComparison, tipInterval time.Duration) error {
	if len(rows) == 0 {
		return fmt.Errorf("nothing to chart")
	}
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	tipPara := widgets.NewParagraph()
	tipPara.Title = " Did you know? "
	tipPara.Text = getPaddedTip(GetRandomTip())
	tipPara.WrapText = true
	tipPara.BorderStyle = StyleBorder(false)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.Text = "[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit"
	keysPara.BorderStyle = StyleBorder(false)

	charts := heightCharts(rows)
	chartCols := make([]interface{}, len(charts))
	for i, c := range charts {
		chartCols[i] = ui.NewCol(1.0/float64(len(charts)), c)
	}

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.5, chartCols...),
		ui.NewRow(0.4, comparisonTable(rows)),
		ui.NewRow(0.1,
			ui.NewCol(0.7, tipPara),
			ui.NewCol(0.3, keysPara),
		),
	)
	ui.Render(grid)

	ticker := time.NewTicker(tipInterval)
	defer ticker.Stop()

	uiEvents := ui.PollEvents()
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<Escape>", "<C-c>":
				return nil
			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				grid.SetRect(0, 0, payload.Width, payload.Height)
				ui.Clear()
				ui.Render(grid)
			}
		case <-ticker.C:
			tipPara.Text = getPaddedTip(GetRandomTip())
			ui.Render(tipPara)
		}
	}
}
