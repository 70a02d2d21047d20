package sheetModel

import "github.com/akolanti/SheetAPI/internal/config"

// SummaryConfig carries the engine caps. It is threaded explicitly through
// every engine call - there is no package level mutable default.
type SummaryConfig struct {
	RowCap      int //max data rows kept per sheet
	CellCharCap int //max characters rendered per cell
	MaxFiles    int //soft recommendation, not enforced by the engine
}

func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		RowCap:      config.DefaultRowCap,
		CellCharCap: config.DefaultCellCharCap,
		MaxFiles:    config.DefaultMaxFiles,
	}
}

func (c SummaryConfig) Validate() error {
	if c.RowCap <= 0 {
		return &ConfigError{Field: "rowCap", Value: c.RowCap}
	}
	if c.CellCharCap <= 0 {
		return &ConfigError{Field: "cellCharCap", Value: c.CellCharCap}
	}
	if c.MaxFiles <= 0 {
		return &ConfigError{Field: "maxFiles", Value: c.MaxFiles}
	}
	return nil
}
