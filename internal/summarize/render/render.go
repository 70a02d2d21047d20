package render

import (
	"fmt"
	"strings"

	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
)

// TruncationMarker is appended to any cell whose text was cut at the char
// cap, so the reader can tell a truncated value from a short one.
const TruncationMarker = "..."

// TruncateCell bounds one rendered cell to cap characters. The cap counts
// runes, not bytes, so multi-byte text is never split mid-character.
func TruncateCell(value string, cap int) string {
	runes := []rune(value)
	if len(runes) <= cap {
		return value
	}
	return string(runes[:cap]) + TruncationMarker
}

// WorkbookSection renders one file's full summary section.
func WorkbookSection(workbook sheetModel.Workbook, cfg sheetModel.SummaryConfig) string {
	var b strings.Builder

	names := make([]string, len(workbook.Sheets))
	for i, sheet := range workbook.Sheets {
		names[i] = sheet.Name
	}
	fmt.Fprintf(&b, "FILE: %s\n", workbook.FileName)
	fmt.Fprintf(&b, "  Sheets: %d (%s)\n", len(workbook.Sheets), strings.Join(names, ", "))

	for _, sheet := range workbook.Sheets {
		b.WriteString("\n")
		b.WriteString(SheetBlock(sheet, cfg))
	}
	return b.String()
}

// SheetBlock renders one sheet as declarative structured text: counts and
// column profiles first, then the capped sample rows. A zero-row sheet gets
// an explicit no-data marker instead of an empty block.
func SheetBlock(sheet sheetModel.Sheet, cfg sheetModel.SummaryConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  SHEET: %s\n", sheet.Name)

	if sheet.Err != nil {
		fmt.Fprintf(&b, "    ERROR: %v\n", sheet.Err)
		return b.String()
	}

	if sheet.Truncated {
		fmt.Fprintf(&b, "    Rows: %d total (truncated to %d)\n", sheet.TotalRows, cfg.RowCap)
	} else {
		fmt.Fprintf(&b, "    Rows: %d total\n", sheet.TotalRows)
	}

	fmt.Fprintf(&b, "    Columns (%d):\n", len(sheet.Columns))
	for _, col := range sheet.Columns {
		fmt.Fprintf(&b, "      - %s (%s, nulls: %d)\n",
			TruncateCell(col.Name, cfg.CellCharCap), col.Type, col.NullCount)
	}

	if len(sheet.Rows) == 0 {
		b.WriteString("    (no data rows)\n")
		return b.String()
	}

	b.WriteString("    Sample rows:\n")
	for i, row := range sheet.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = TruncateCell(cell, cfg.CellCharCap)
		}
		fmt.Fprintf(&b, "      Row %d: %s\n", i+1, strings.Join(cells, " | "))
	}
	return b.String()
}
