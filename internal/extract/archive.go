package extract

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"tag-validator/internal/domain"

	"go.uber.org/zap"
)

// folderModules maps a substring of the containing folder name to a module type.
// The first match wins.
var folderModules = []struct {
	fragment string
	module   domain.ModuleType
}{
	{"Code Analysis MCQs", domain.ModuleCodeAnalysis},
	{"Coding Questions", domain.ModulePythonCoding},
	{"SQL_Coding", domain.ModuleSQLCoding},
	{"HTML_Code Questions", domain.ModuleWebCoding},
}

// ModuleForFolder resolves the module type of a JSON file from the name of
// the folder that contains it.
func ModuleForFolder(folder string) domain.ModuleType {
	for _, fm := range folderModules {
		if strings.Contains(folder, fm.fragment) {
			return fm.module
		}
	}
	return domain.ModuleUnknown
}

type archiveQuestion struct {
	QuestionID  string `json:"question_id"`
	TagNames    []any  `json:"tag_names"`
	InputOutput []struct {
		QuestionID string `json:"question_id"`
	} `json:"input_output"`
}

// Archive extracts records from every .json file in a zip archive. Files are
// read in path order. A file that cannot be decoded is reported as a warning
// and the rest of the archive is still processed.
func (e *Extractor) Archive(name string, r io.ReaderAt, size int64) (*Result, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		e.logger.Error("Failed to open archive", zap.String("file", name), zap.Error(err))
		return nil, domain.NewExtractionError(name, err)
	}

	files := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ".json") || strings.HasPrefix(f.Name, "__MACOSX/") {
			continue
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	result := &Result{}
	for _, f := range files {
		folder := path.Base(path.Dir(f.Name))
		module := ModuleForFolder(folder)
		records, err := e.readArchiveFile(f, module)
		result.Records = append(result.Records, records...)
		if err != nil {
			warning := fmt.Sprintf("Failed to process %s in folder '%s': %v", path.Base(f.Name), folder, err)
			e.logger.Warn("Skipping archive entry", zap.String("archive", name), zap.String("entry", f.Name), zap.Error(err))
			result.Warnings = append(result.Warnings, warning)
		}
	}

	e.logger.Info("Extracted questions from archive",
		zap.String("file", name),
		zap.Int("json_files", len(files)),
		zap.Int("records", len(result.Records)),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// readArchiveFile decodes one entry. Records decoded before an error are
// still returned.
func (e *Extractor) readArchiveFile(f *zip.File, module domain.ModuleType) ([]domain.QuestionRecord, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		items = []json.RawMessage{trimmed}
	default:
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	fileName := path.Base(f.Name)
	var records []domain.QuestionRecord
	for _, raw := range items {
		if !isObject(raw) {
			continue
		}
		var q archiveQuestion
		if err := json.Unmarshal(raw, &q); err != nil {
			return records, fmt.Errorf("decode question: %w", err)
		}

		id := q.QuestionID
		if module == domain.ModuleCodeAnalysis {
			id = ""
			if len(q.InputOutput) > 0 {
				id = q.InputOutput[0].QuestionID
			}
		}

		candidates := make([]string, 0, len(q.TagNames))
		for _, t := range q.TagNames {
			if s, ok := t.(string); ok {
				candidates = append(candidates, s)
			} else if t != nil {
				candidates = append(candidates, fmt.Sprint(t))
			}
		}
		tags := e.filterTags(id, f.Name, candidates)

		if id == "" {
			id = "Unknown_ID_in_" + fileName
		}
		record := domain.NewQuestionRecord(id, module, tags...)
		record.Source = f.Name
		records = append(records, record)
	}
	return records, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
