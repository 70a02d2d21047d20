package profile

import (
	"testing"

	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
)

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		value    string
		expected sheetModel.CellKind
	}{
		{"42", sheetModel.CellInteger},
		{"-7", sheetModel.CellInteger},
		{"3.14", sheetModel.CellFloat},
		{"1e5", sheetModel.CellFloat},
		{"true", sheetModel.CellBoolean},
		{"YES", sheetModel.CellBoolean},
		{"2024-01-15", sheetModel.CellDate},
		{"Jan 2, 2006", sheetModel.CellDate},
		{"hello", sheetModel.CellText},
		{"12abc", sheetModel.CellText},
		{"", sheetModel.CellBlank},
		{"   ", sheetModel.CellBlank},
	}

	for _, tt := range tests {
		if got := ClassifyCell(tt.value); got != tt.expected {
			t.Errorf("ClassifyCell(%q) = %v; want %v", tt.value, got, tt.expected)
		}
	}
}

func TestInferColumns_Scenarios(t *testing.T) {
	column := func(rows ...string) [][]string {
		grid := make([][]string, len(rows))
		for i, v := range rows {
			grid[i] = []string{v}
		}
		return grid
	}

	tests := []struct {
		name          string
		rows          [][]string
		expectedType  sheetModel.ColumnType
		expectedNulls int
	}{
		{
			name:          "Integers_With_Blank",
			rows:          column("1", "2", "", "4"),
			expectedType:  sheetModel.ColumnInteger,
			expectedNulls: 1,
		},
		{
			name:         "Integers_And_Floats_Promote_To_Float",
			rows:         column("1", "2.5", "3"),
			expectedType: sheetModel.ColumnFloat,
		},
		{
			name:         "Booleans",
			rows:         column("yes", "no", "TRUE"),
			expectedType: sheetModel.ColumnBoolean,
		},
		{
			name:         "Dates",
			rows:         column("2024-01-15", "2024/02/20"),
			expectedType: sheetModel.ColumnDate,
		},
		{
			name:         "Single_Text_Value_Degrades_Column",
			rows:         column("1", "2", "banana", "4"),
			expectedType: sheetModel.ColumnText,
		},
		{
			name:          "All_Blank_Is_Empty",
			rows:          column("", "  ", ""),
			expectedType:  sheetModel.ColumnEmpty,
			expectedNulls: 3,
		},
		{
			name:         "Strict_Kinds_Disagree_Without_Text",
			rows:         column("true", "2024-01-15"),
			expectedType: sheetModel.ColumnMixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := InferColumns([]string{"col"}, tt.rows, 5)
			if len(cols) != 1 {
				t.Fatalf("Expected 1 column, got %d", len(cols))
			}
			if cols[0].Type != tt.expectedType {
				t.Errorf("Type got %v, want %v", cols[0].Type, tt.expectedType)
			}
			if cols[0].NullCount != tt.expectedNulls {
				t.Errorf("NullCount got %d, want %d", cols[0].NullCount, tt.expectedNulls)
			}
		})
	}
}

func TestInferColumns_HeaderSynthesis(t *testing.T) {
	header := []string{"name", "", "  "}
	rows := [][]string{{"a", "b", "c"}}

	cols := InferColumns(header, rows, 5)

	if cols[0].Name != "name" {
		t.Errorf("Expected kept header, got %s", cols[0].Name)
	}
	if cols[1].Name != "Column_2" || cols[2].Name != "Column_3" {
		t.Errorf("Expected synthesized names Column_2/Column_3, got %s/%s", cols[1].Name, cols[2].Name)
	}
}

func TestInferColumns_ShortRowsCountAsBlank(t *testing.T) {
	header := []string{"a", "b"}
	rows := [][]string{
		{"1", "2"},
		{"3"}, //ragged row, second cell missing
	}

	cols := InferColumns(header, rows, 5)

	if cols[1].Type != sheetModel.ColumnInteger {
		t.Errorf("Type got %v, want integer", cols[1].Type)
	}
	if cols[1].NullCount != 1 {
		t.Errorf("NullCount got %d, want 1", cols[1].NullCount)
	}
}

func TestInferColumns_SampleLimit(t *testing.T) {
	rows := [][]string{{"1"}, {"2"}, {""}, {"3"}, {"4"}}

	cols := InferColumns([]string{"n"}, rows, 3)

	if len(cols[0].Samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(cols[0].Samples))
	}
	//first non-blank values in row order
	for i, want := range []string{"1", "2", "3"} {
		if cols[0].Samples[i] != want {
			t.Errorf("Sample %d got %s, want %s", i, cols[0].Samples[i], want)
		}
	}
}

func TestInferColumns_Deterministic(t *testing.T) {
	header := []string{"id", "amount", "note"}
	rows := [][]string{
		{"1", "9.99", "ok"},
		{"2", "", "retry"},
		{"3", "1.50", ""},
	}

	first := InferColumns(header, rows, 5)
	for i := 0; i < 10; i++ {
		again := InferColumns(header, rows, 5)
		for c := range first {
			if first[c].Type != again[c].Type || first[c].NullCount != again[c].NullCount {
				t.Fatalf("Run %d diverged on column %s", i, first[c].Name)
			}
		}
	}
}
