package profile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
)

// dateLayouts covers the formats excelize renders date cells with, plus the
// common ISO and slash variants seen in pasted text columns.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-06",
	"1/2/06 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"2 Jan 2006",
}

var booleanLiterals = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
}

// ClassifyCell maps one cell's text to its strictest kind. Precedence is
// integer > float > boolean > date > text, blanks classify separately.
func ClassifyCell(value string) sheetModel.CellKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return sheetModel.CellBlank
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return sheetModel.CellInteger
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return sheetModel.CellFloat
	}
	if booleanLiterals[strings.ToLower(v)] {
		return sheetModel.CellBoolean
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return sheetModel.CellDate
		}
	}
	return sheetModel.CellText
}

// InferColumns profiles every column position of a row-capped sheet. The
// result is a pure function of the cell values: no randomness, no external
// state, and the column type does not depend on row order.
func InferColumns(header []string, rows [][]string, sampleLimit int) []sheetModel.Column {
	columns := make([]sheetModel.Column, len(header))

	for colIdx := range header {
		name := strings.TrimSpace(header[colIdx])
		if name == "" {
			name = fmt.Sprintf("Column_%d", colIdx+1)
		}

		counts := map[sheetModel.CellKind]int{}
		var samples []string
		for _, row := range rows {
			if colIdx >= len(row) {
				counts[sheetModel.CellBlank]++
				continue
			}
			kind := ClassifyCell(row[colIdx])
			counts[kind]++
			if kind != sheetModel.CellBlank && len(samples) < sampleLimit {
				samples = append(samples, row[colIdx])
			}
		}

		columns[colIdx] = sheetModel.Column{
			Name:      name,
			Type:      decideType(counts, len(rows)),
			NullCount: counts[sheetModel.CellBlank],
			Samples:   samples,
		}
	}
	return columns
}

// decideType applies the precedence rules: a stricter type wins only when
// every non-blank value satisfies it, a single unparseable value degrades the
// column to text, and disagreeing strict kinds with no text fall to mixed.
func decideType(counts map[sheetModel.CellKind]int, totalRows int) sheetModel.ColumnType {
	nonBlank := totalRows - counts[sheetModel.CellBlank]
	if nonBlank == 0 {
		return sheetModel.ColumnEmpty
	}

	integers := counts[sheetModel.CellInteger]
	floats := counts[sheetModel.CellFloat]
	booleans := counts[sheetModel.CellBoolean]
	dates := counts[sheetModel.CellDate]

	switch {
	case integers == nonBlank:
		return sheetModel.ColumnInteger
	case integers+floats == nonBlank:
		return sheetModel.ColumnFloat
	case booleans == nonBlank:
		return sheetModel.ColumnBoolean
	case dates == nonBlank:
		return sheetModel.ColumnDate
	case counts[sheetModel.CellText] > 0:
		return sheetModel.ColumnText
	default:
		return sheetModel.ColumnMixed
	}
}
