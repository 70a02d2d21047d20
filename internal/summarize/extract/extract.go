package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
	"github.com/xuri/excelize/v2"
)

// CheckFormat gates on the declared filename before any parsing happens.
// Only .xlsx and .xls are accepted.
func CheckFormat(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".xlsx", ".xls":
		return nil
	default:
		return fmt.Errorf("%w: extension %q is not a spreadsheet", sheetModel.ErrUnsupportedFormat, ext)
	}
}

// OpenWorkbook parses one uploaded spreadsheet and returns its sheets with the
// row cap already applied. A sheet that fails to parse gets its Err field set
// and its siblings are returned normally. The whole workbook fails only when
// the container itself is unreadable or holds zero sheets.
func OpenWorkbook(file sheetModel.UploadedFile, cfg sheetModel.SummaryConfig) (sheetModel.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	if err != nil {
		return sheetModel.Workbook{}, fmt.Errorf("%w: %v", sheetModel.ErrUnreadableFile, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return sheetModel.Workbook{}, fmt.Errorf("%w: workbook contains no sheets", sheetModel.ErrUnreadableFile)
	}

	workbook := sheetModel.Workbook{FileName: file.Name}
	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			workbook.Sheets = append(workbook.Sheets, sheetModel.Sheet{
				Name: sheetName,
				Err:  fmt.Errorf("failed to parse sheet: %v", err),
			})
			continue
		}
		workbook.Sheets = append(workbook.Sheets, buildSheet(sheetName, rows, cfg))
	}
	return workbook, nil
}

// buildSheet splits the raw grid into header and data rows and applies the
// row cap. The cap here is the single global truncation decision - the
// profiler and the renderer both operate on the rows kept by it.
func buildSheet(name string, rows [][]string, cfg sheetModel.SummaryConfig) sheetModel.Sheet {
	width := gridWidth(rows)

	sheet := sheetModel.Sheet{Name: name}
	if len(rows) == 0 || width == 0 {
		return sheet
	}

	sheet.Header = padRow(rows[0], width)

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		sheet.TotalRows++
		if len(sheet.Rows) < cfg.RowCap {
			sheet.Rows = append(sheet.Rows, padRow(row, width))
		}
	}
	sheet.Truncated = sheet.TotalRows > cfg.RowCap
	return sheet
}

func gridWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
