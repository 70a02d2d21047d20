package sheetModel

// CellKind is the natural type of a single cell value at the source.
type CellKind string

// ColumnType is the inferred type of a whole column over the sampled rows.
type ColumnType string

const (
	CellInteger CellKind = "integer"
	CellFloat   CellKind = "float"
	CellBoolean CellKind = "boolean"
	CellDate    CellKind = "date"
	CellText    CellKind = "text"
	CellBlank   CellKind = "blank"

	ColumnInteger ColumnType = "integer"
	ColumnFloat   ColumnType = "float"
	ColumnBoolean ColumnType = "boolean"
	ColumnDate    ColumnType = "date"
	ColumnText    ColumnType = "text"
	ColumnEmpty   ColumnType = "empty"
	ColumnMixed   ColumnType = "mixed"
)

// UploadedFile is one submitted spreadsheet: declared filename plus raw bytes.
// This is the only input the engine accepts, the web layer owns everything
// before it.
type UploadedFile struct {
	Name    string
	Content []byte
}

type Column struct {
	Name      string
	Type      ColumnType
	NullCount int
	Samples   []string
}

// Sheet holds one tab's extracted data. Rows is already row-capped, TotalRows
// is the pre-cap count. Err is set when this sheet failed to parse while its
// siblings survived.
type Sheet struct {
	Name      string
	Header    []string
	TotalRows int
	Rows      [][]string
	Columns   []Column
	Truncated bool
	Err       error
}

// Workbook is request-scoped and never persisted.
type Workbook struct {
	FileName string
	Sheets   []Sheet
}

// FileSummary is the per-file result value: either a rendered block or a
// failure reason, never both.
type FileSummary struct {
	FileName string
	Block    string
	Err      *FileError
}

// SummaryDocument is the only artifact that crosses to the LLM collaborator.
type SummaryDocument struct {
	Text   string
	Errors []FileError
}
