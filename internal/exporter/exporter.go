// Package exporter gives the header-collection algorithm (C8, in scope) a
// narrow-interface home for the delegated, out-of-scope part: writing rows
// to CSV or XLSX. Grouping consecutive same-first-segment paths is spec'd
// behavior (spec.md §4.8); the byte-exact cell layout beyond that is not —
// these writers exist so github.com/xuri/excelize/v2 and encoding/csv have
// a concrete place to live, not to reproduce the teacher's exact output.
package exporter

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"

	"jsonlens/internal/header"
)

// Writer accepts a flat, alphabetically sorted header list (as Collect
// returns it, so consecutive paths can be grouped by Group) and a sequence
// of rows — one string per leaf header, in header order — and
// produces a file in its target format.
type Writer interface {
	Write(headers []string, rows [][]string, w io.Writer) error
}

// CSVWriter writes flat headers and rows as CSV.
type CSVWriter struct{}

func (CSVWriter) Write(headers []string, rows [][]string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// XLSXWriter writes flat headers and rows as a single-sheet workbook. Row 1
// holds the grouped first-segment labels (merged across each group, spec.md
// §4.8's grouping made visible to spreadsheet users), row 2 the flat
// headers, and data rows start at row 3.
type XLSXWriter struct{}

const sheetName = "Sheet1"

func (XLSXWriter) Write(headers []string, rows [][]string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	groups := header.Group(headers)
	col := 1
	for _, g := range groups {
		startCell, _ := excelize.CoordinatesToCellName(col, 1)
		if len(g) > 1 {
			endCell, _ := excelize.CoordinatesToCellName(col+len(g)-1, 1)
			f.MergeCell(sheetName, startCell, endCell)
		}
		f.SetCellValue(sheetName, startCell, g[0][:firstDashOrFull(g[0])])
		col += len(g)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
	}

	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	return f.Write(w)
}

func firstDashOrFull(path string) int {
	for i, c := range path {
		if c == '_' {
			return i
		}
	}
	return len(path)
}
