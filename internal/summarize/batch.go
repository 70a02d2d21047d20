package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/domain/sheetModel"
	"github.com/akolanti/SheetAPI/internal/summarize/extract"
	"github.com/akolanti/SheetAPI/internal/summarize/profile"
	"github.com/akolanti/SheetAPI/internal/summarize/render"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

var batchLogger = logger_i.NewLogger("Summarize Batch")

// SummarizeBatch drives extraction, profiling and rendering over every
// uploaded file and assembles one Summary Document. Files are processed by
// independent goroutines - they share no mutable state - but the document's
// sections always appear in submission order.
//
// Per-file failures become error sections and never abort the batch. The only
// fatal outcomes are an invalid configuration and a cancelled context.
func SummarizeBatch(ctx context.Context, files []sheetModel.UploadedFile, cfg sheetModel.SummaryConfig) (sheetModel.SummaryDocument, error) {
	if err := cfg.Validate(); err != nil {
		return sheetModel.SummaryDocument{}, err
	}
	if len(files) > cfg.MaxFiles {
		//soft policy only - the batch still runs
		batchLogger.Warn("File count exceeds recommended maximum", "files", len(files), "maxFiles", cfg.MaxFiles)
	}

	results := make([]sheetModel.FileSummary, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = summarizeFile(ctx, files[idx], cfg)
		}(i)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return sheetModel.SummaryDocument{}, ctx.Err()
	}
	return assembleDocument(results), nil
}

// summarizeFile produces the per-file result value: a rendered block or a
// failure reason, never both and never a panic across this boundary.
func summarizeFile(ctx context.Context, file sheetModel.UploadedFile, cfg sheetModel.SummaryConfig) sheetModel.FileSummary {
	if ctx.Err() != nil {
		//request already aborted, don't burn cycles on the remaining files
		return sheetModel.FileSummary{FileName: file.Name}
	}

	if err := extract.CheckFormat(file.Name); err != nil {
		return fileFailure(file.Name, sheetModel.FailureUnsupportedFormat, err)
	}

	workbook, err := extract.OpenWorkbook(file, cfg)
	if err != nil {
		return fileFailure(file.Name, sheetModel.FailureUnreadableFile, err)
	}

	for i := range workbook.Sheets {
		sheet := &workbook.Sheets[i]
		if sheet.Err != nil {
			batchLogger.Warn("Sheet failed to parse", "file", file.Name, "sheet", sheet.Name, "error", sheet.Err)
			continue
		}
		sheet.Columns = profile.InferColumns(sheet.Header, sheet.Rows, config.ColumnSampleLimit)
	}

	return sheetModel.FileSummary{
		FileName: file.Name,
		Block:    render.WorkbookSection(workbook, cfg),
	}
}

func fileFailure(fileName string, kind string, err error) sheetModel.FileSummary {
	reason := err.Error()
	//the sentinel prefix is redundant inside a typed marker
	reason = strings.TrimPrefix(reason, sheetModel.ErrUnsupportedFormat.Error()+": ")
	reason = strings.TrimPrefix(reason, sheetModel.ErrUnreadableFile.Error()+": ")

	batchLogger.Warn("File failed", "file", fileName, "kind", kind, "reason", reason)
	return sheetModel.FileSummary{
		FileName: fileName,
		Err:      &sheetModel.FileError{FileName: fileName, Kind: kind, Reason: reason},
	}
}

// assembleDocument concatenates per-file results with self-describing
// delimiters so the downstream LLM call can attribute content to files.
func assembleDocument(results []sheetModel.FileSummary) sheetModel.SummaryDocument {
	var doc sheetModel.SummaryDocument
	var b strings.Builder

	b.WriteString("=== SPREADSHEET ANALYSIS SUMMARY ===\n")
	fmt.Fprintf(&b, "Files processed: %d\n", len(results))

	for _, result := range results {
		b.WriteString("\n")
		if result.Err != nil {
			fmt.Fprintf(&b, "FILE: %s\n  %s\n", result.FileName, result.Err.Marker())
			doc.Errors = append(doc.Errors, *result.Err)
			continue
		}
		b.WriteString(result.Block)
	}

	doc.Text = b.String()
	return doc
}

// IsConfigError reports whether err is fatal misconfiguration rather than
// bad user data.
func IsConfigError(err error) bool {
	var configErr *sheetModel.ConfigError
	return errors.As(err, &configErr)
}
