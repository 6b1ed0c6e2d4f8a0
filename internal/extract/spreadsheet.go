package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tag-validator/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// QuestionsSheet is the worksheet read from .xlsx uploads.
const QuestionsSheet = "Questions"

const (
	colQuestionID = 0
	colType       = 1
	colTags       = 12

	recordStartType = "MULTIPLE_CHOICE"
)

// Spreadsheet extracts MCQ records from an .xlsx or .csv export. The file has
// no header row; a MULTIPLE_CHOICE row with an id starts a new record and the
// tag cells of it and the following rows belong to that record.
func (e *Extractor) Spreadsheet(name string, r io.Reader) (*Result, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		err = fmt.Errorf("unsupported spreadsheet type %q", filepath.Ext(name))
	}
	if err != nil {
		e.logger.Error("Failed to read spreadsheet", zap.String("file", name), zap.Error(err))
		return nil, domain.NewExtractionError(name, err)
	}

	type pending struct {
		id   string
		tags []string
	}
	var (
		order   []*pending
		current *pending
	)
	for _, row := range rows {
		id := strings.TrimSpace(cell(row, colQuestionID))
		qType := strings.ToUpper(strings.TrimSpace(cell(row, colType)))
		if qType == recordStartType && id != "" {
			current = &pending{id: id}
			order = append(order, current)
		}
		if current == nil {
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(cell(row, colTags)), "\n") {
			if tag := strings.TrimSpace(line); tag != "" {
				current.tags = append(current.tags, tag)
			}
		}
	}

	result := &Result{Records: make([]domain.QuestionRecord, 0, len(order))}
	for _, p := range order {
		record := domain.NewQuestionRecord(p.id, domain.ModuleMCQ, e.filterTags(p.id, name, p.tags)...)
		record.Source = name
		result.Records = append(result.Records, record)
	}
	e.logger.Info("Extracted questions from spreadsheet", zap.String("file", name), zap.Int("records", len(result.Records)))
	return result, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(QuestionsSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", QuestionsSheet, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
}
