package excel

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/wordlearner/pkg/models"
)

const exportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ExportDocument is the JSON backup of all words and statistics
type ExportDocument struct {
	Words      []models.WordRecord `json:"words"`
	Stats      *models.Stats       `json:"stats"`
	ExportDate string              `json:"exportDate"`
}

// NewExportDocument builds a backup stamped with now in UTC
func NewExportDocument(words []models.WordRecord, stats *models.Stats, now time.Time) ExportDocument {
	if words == nil {
		words = []models.WordRecord{}
	}
	if stats == nil {
		stats = &models.Stats{Achievements: []string{}}
	}
	return ExportDocument{
		Words:      words,
		Stats:      stats,
		ExportDate: now.UTC().Format(exportDateLayout),
	}
}

// ExportFileName is the file name of a backup made at now
func ExportFileName(now time.Time, ext string) string {
	return fmt.Sprintf("word-learner-export-%s.%s", now.Format("2006-01-02"), ext)
}

// WriteJSON writes doc as indented JSON
func WriteJSON(w io.Writer, doc ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// WordsSheet is the sheet ExportXLSX writes to
const WordsSheet = "Words"

var exportHeader = []interface{}{
	"Word", "Context", "Source URL", "Base form", "Practice count", "Last practiced", "Example sentence", "Created",
}

// ExportXLSX writes the words to a spreadsheet at path. The first three
// columns are the ones ImportWords reads back.
func ExportXLSX(path string, words []models.WordRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", WordsSheet)

	if err := f.SetSheetRow(WordsSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, w := range words {
		lastPracticed := ""
		if w.LastPracticed != nil {
			lastPracticed = w.LastPracticed.Format(time.RFC3339)
		}
		row := []interface{}{
			w.Word, w.Context, w.SourceURL, w.BaseForm, w.PracticeCount,
			lastPracticed, w.ExampleSentence, w.CreatedAt.Format(time.RFC3339),
		}

		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(WordsSheet, cellName, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}
