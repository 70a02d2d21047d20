package extract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
	"github.com/xuri/excelize/v2"
)

func testConfig() sheetModel.SummaryConfig {
	return sheetModel.SummaryConfig{RowCap: 100, CellCharCap: 500, MaxFiles: 4}
}

// buildWorkbookBytes writes an in-memory xlsx with one populated sheet.
func buildWorkbookBytes(t *testing.T, sheetName string, grid [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	for r, row := range grid {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		fileName string
		wantErr  bool
	}{
		{"report.xlsx", false},
		{"legacy.xls", false},
		{"REPORT.XLSX", false},
		{"data.csv", true},
		{"notes.txt", true},
		{"noextension", true},
	}

	for _, tt := range tests {
		err := CheckFormat(tt.fileName)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckFormat(%s) error = %v, wantErr %v", tt.fileName, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, sheetModel.ErrUnsupportedFormat) {
			t.Errorf("CheckFormat(%s) should wrap ErrUnsupportedFormat, got %v", tt.fileName, err)
		}
	}
}

func TestOpenWorkbook_HappyPath(t *testing.T) {
	content := buildWorkbookBytes(t, "people", [][]interface{}{
		{"name", "age"},
		{"alice", 30},
		{"bob", 25},
	})

	workbook, err := OpenWorkbook(sheetModel.UploadedFile{Name: "people.xlsx", Content: content}, testConfig())
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	if len(workbook.Sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(workbook.Sheets))
	}
	sheet := workbook.Sheets[0]
	if sheet.Name != "people" {
		t.Errorf("Sheet name got %s, want people", sheet.Name)
	}
	if len(sheet.Header) != 2 || sheet.Header[0] != "name" {
		t.Errorf("Header mismatch: %v", sheet.Header)
	}
	if sheet.TotalRows != 2 || len(sheet.Rows) != 2 {
		t.Errorf("Rows got total=%d kept=%d, want 2/2", sheet.TotalRows, len(sheet.Rows))
	}
	if sheet.Truncated {
		t.Error("Small sheet must not be flagged truncated")
	}
}

func TestOpenWorkbook_RowCap(t *testing.T) {
	grid := [][]interface{}{{"n"}}
	for i := 0; i < 250; i++ {
		grid = append(grid, []interface{}{i})
	}
	content := buildWorkbookBytes(t, "big", grid)

	workbook, err := OpenWorkbook(sheetModel.UploadedFile{Name: "big.xlsx", Content: content}, testConfig())
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	sheet := workbook.Sheets[0]
	if sheet.TotalRows != 250 {
		t.Errorf("TotalRows got %d, want 250 (count before the cap)", sheet.TotalRows)
	}
	if len(sheet.Rows) != 100 {
		t.Errorf("Kept rows got %d, want 100", len(sheet.Rows))
	}
	if !sheet.Truncated {
		t.Error("Expected truncated flag")
	}
	if sheet.Rows[0][0] != "0" || sheet.Rows[99][0] != "99" {
		t.Errorf("Cap must keep the first rows in order, got first=%s last=%s", sheet.Rows[0][0], sheet.Rows[99][0])
	}
}

func TestOpenWorkbook_CorruptBytes(t *testing.T) {
	_, err := OpenWorkbook(sheetModel.UploadedFile{Name: "bad.xlsx", Content: []byte("this is not a zip archive")}, testConfig())

	if !errors.Is(err, sheetModel.ErrUnreadableFile) {
		t.Errorf("Expected ErrUnreadableFile, got %v", err)
	}
}

func TestOpenWorkbook_EmptyContent(t *testing.T) {
	_, err := OpenWorkbook(sheetModel.UploadedFile{Name: "empty.xlsx", Content: nil}, testConfig())

	if !errors.Is(err, sheetModel.ErrUnreadableFile) {
		t.Errorf("Expected ErrUnreadableFile for empty content, got %v", err)
	}
}

func TestOpenWorkbook_MultiSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &[]interface{}{"a"}); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	if _, err := f.NewSheet("second"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	workbook, err := OpenWorkbook(sheetModel.UploadedFile{Name: "multi.xlsx", Content: buf.Bytes()}, testConfig())
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	if len(workbook.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(workbook.Sheets))
	}
	//the untouched second sheet comes back empty but not failed
	if workbook.Sheets[1].Err != nil {
		t.Errorf("Empty sibling sheet should not fail: %v", workbook.Sheets[1].Err)
	}
}

func TestBuildSheet_BlankRowsAndRaggedGrid(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"1", "2"},
		{"", "  ", ""}, //all blank, skipped entirely
		{"3", "4", "5", "6"},
	}

	sheet := buildSheet("ragged", rows, testConfig())

	if sheet.TotalRows != 2 {
		t.Errorf("TotalRows got %d, want 2 (blank row skipped)", sheet.TotalRows)
	}
	width := len(sheet.Header)
	for i, row := range sheet.Rows {
		if len(row) != width {
			t.Errorf("Row %d width got %d, want %d", i, len(row), width)
		}
	}
}

func TestBuildSheet_HeaderOnly(t *testing.T) {
	sheet := buildSheet("lonely", [][]string{{"only", "header"}}, testConfig())

	if sheet.TotalRows != 0 || len(sheet.Rows) != 0 {
		t.Errorf("Header-only sheet should have zero data rows, got total=%d", sheet.TotalRows)
	}
	if sheet.Truncated {
		t.Error("Header-only sheet must not be truncated")
	}
}

func TestBuildSheet_Deterministic(t *testing.T) {
	rows := [][]string{{"h"}}
	for i := 0; i < 150; i++ {
		rows = append(rows, []string{fmt.Sprintf("%d", i)})
	}

	first := buildSheet("same", rows, testConfig())
	second := buildSheet("same", rows, testConfig())

	if first.TotalRows != second.TotalRows || len(first.Rows) != len(second.Rows) || first.Truncated != second.Truncated {
		t.Error("Two runs over identical input diverged")
	}
}
