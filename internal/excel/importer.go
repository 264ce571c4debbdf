package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/wordlearner/internal/words"
)

// Saver stores one word. *words.Service satisfies it.
type Saver interface {
	Save(ctx context.Context, word, snippet, sourceURL string) (words.SaveResult, error)
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	WordColumn    string // Column with the word
	ContextColumn string // Column with the sentence the word was seen in
	SourceColumn  string // Column with the source URL
	SheetName     string // Sheet to import, the first one when empty
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration. It matches
// the layout written by ExportXLSX.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:    "A",
		ContextColumn: "B",
		SourceColumn:  "C",
		StartRow:      2, // skip header
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Duplicates     int
	Skipped        int
	Errors         []string
}

type columns struct {
	word, context, source int
}

func (c ImportConfig) columns() (columns, error) {
	var cols columns
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{c.WordColumn, &cols.word},
		{c.ContextColumn, &cols.context},
		{c.SourceColumn, &cols.source},
	} {
		if col.name == "" {
			*col.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(col.name)
		if err != nil {
			return columns{}, fmt.Errorf("invalid column %q: %w", col.name, err)
		}
		*col.dst = n - 1
	}
	if cols.word < 0 {
		return columns{}, errors.New("word column is required")
	}
	return cols, nil
}

// ImportWords imports words from an Excel or CSV file. Every row goes through
// saver so duplicates are detected the same way as for words saved by hand.
func ImportWords(ctx context.Context, config ImportConfig, saver Saver) (*ImportResult, error) {
	cols, err := config.columns()
	if err != nil {
		return nil, err
	}

	var rows [][]string
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		word := cell(row, cols.word)
		if word == "" {
			result.Skipped++
			continue
		}
		result.TotalProcessed++

		res, err := saver.Save(ctx, word, cell(row, cols.context), cell(row, cols.source))
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		case res.Duplicate:
			result.Duplicates++
		default:
			result.Created++
		}
	}
	return result, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
