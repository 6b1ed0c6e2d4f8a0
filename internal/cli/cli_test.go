package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tag-validator/internal/domain"
	"tag-validator/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubValidation struct {
	run func(ctx context.Context, batch []domain.QuestionRecord, opts domain.ValidationOptions) (*domain.ValidationReport, error)
}

func (s *stubValidation) Run(ctx context.Context, batch []domain.QuestionRecord, opts domain.ValidationOptions) (*domain.ValidationReport, error) {
	return s.run(ctx, batch, opts)
}

type stubCatalog struct {
	catalog domain.ReferenceCatalog
	err     error
}

func (s *stubCatalog) Load(context.Context) (domain.ReferenceCatalog, error) {
	return s.catalog, s.err
}

// passOrFail marks records that carry NIAT as passing.
func passOrFail(_ context.Context, batch []domain.QuestionRecord, _ domain.ValidationOptions) (*domain.ValidationReport, error) {
	report := &domain.ValidationReport{RunID: "01HGZ8VNRYXS8QKNJV5GRWPWDQ", Total: len(batch)}
	for _, r := range batch {
		res := domain.RecordResult{QuestionID: r.QuestionID, ModuleType: r.ModuleType, CurrentTags: r.SortedTags(), Issues: []domain.Issue{}}
		if r.HasTag("NIAT") {
			res.Passed = true
			report.Passed++
		} else {
			res.Issues = append(res.Issues, domain.Issue{Kind: domain.IssueMissing, Message: "Missing: NIAT"})
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	if report.Total > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.Total) * 100
	}
	return report, nil
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(ctx context.Context, catalogFile string) (*App, func(), error) {
		if app == nil {
			return nil, nil, errors.New("no app configured")
		}
		return app, func() {}, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSheet(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o600))
	return path
}

func TestValidateCmd(t *testing.T) {
	var gotOpts domain.ValidationOptions
	app := &App{
		Validation: &stubValidation{run: func(ctx context.Context, batch []domain.QuestionRecord, opts domain.ValidationOptions) (*domain.ValidationReport, error) {
			gotOpts = opts
			return passOrFail(ctx, batch, opts)
		}},
		Extractor: extract.NewExtractor(zap.NewNop()),
	}

	t.Run("failures exit with ErrValidationFailed and write csv", func(t *testing.T) {
		sheet := writeSheet(t,
			"q-good,MULTIPLE_CHOICE,,,,,,,,,,,NIAT",
			"q-bad,MULTIPLE_CHOICE,,,,,,,,,,,POOL_1",
		)
		csvPath := filepath.Join(t.TempDir(), "issues.csv")

		out, err := execute(t, app, "validate", "--sheet", sheet, "--course", "Python Basics", "--unit", "Loops", "--set-size", "4", "--csv", csvPath)

		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, out, "q-bad")
		assert.Contains(t, out, "Missing: NIAT")
		assert.NotContains(t, out, "q-good")
		assert.Contains(t, out, "COURSE_PYTHON_BASICS")
		assert.Equal(t, "COURSE_PYTHON_BASICS", gotOpts.Optional.CourseTag)
		assert.Equal(t, []string{"UNIT_LOOPS"}, gotOpts.Optional.UnitTags)
		assert.Equal(t, 4, gotOpts.SetSize)

		f, err := os.Open(csvPath)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"q-bad", "MCQ", "Missing: NIAT", "POOL_1"}, rows[1])
	})

	t.Run("all passing with debug", func(t *testing.T) {
		sheet := writeSheet(t, "q-good,MULTIPLE_CHOICE,,,,,,,,,,,NIAT")

		out, err := execute(t, app, "validate", "--sheet", sheet, "--debug")

		require.NoError(t, err)
		assert.Contains(t, out, "q-good")
		assert.Contains(t, out, "All questions passed.")
	})

	t.Run("requires an input", func(t *testing.T) {
		_, err := execute(t, app, "validate")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("rejects negative set size", func(t *testing.T) {
		_, err := execute(t, app, "validate", "--sheet", "x.csv", "--set-size", "-1")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, app, "validate", "--sheet", filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening sheet")
	})

	t.Run("catalog unavailable is returned", func(t *testing.T) {
		failing := &App{
			Validation: &stubValidation{run: func(context.Context, []domain.QuestionRecord, domain.ValidationOptions) (*domain.ValidationReport, error) {
				return nil, domain.NewCatalogUnavailableError(errors.New("timeout"))
			}},
			Extractor: extract.NewExtractor(zap.NewNop()),
		}
		_, err := execute(t, failing, "validate", "--sheet", writeSheet(t, "q,MULTIPLE_CHOICE"))
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestFormatCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"format", "unit", "Nested", "Conditions"}, "UNIT_NESTED_CONDITIONS\n"},
		{[]string{"format", "COURSE_", "python-basics"}, "COURSE_PYTHON_BASICS\n"},
		{[]string{"format", "sub_topic", "Two Pointers"}, "SUB_TOPIC_TWO_POINTERS\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, nil, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, err := execute(t, nil, "format", "colour", "x")
	assert.Error(t, err)

	_, err = execute(t, nil, "format", "unit", "!!!")
	assert.Error(t, err)
}

func TestCatalogCmd(t *testing.T) {
	app := &App{Catalog: &stubCatalog{catalog: domain.ReferenceCatalog{
		"SQL_CODING": {Topics: map[string]struct{}{"TOPIC_JOINS": {}}},
		"CODING":     {Topics: map[string]struct{}{"TOPIC_ARRAYS": {}, "TOPIC_MAPS": {}}, SubTopics: map[string]struct{}{"SUB_TOPIC_HASHING": {}}},
	}}}

	out, err := execute(t, app, "catalog", "-v")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "CODING"), strings.Index(out, "SQL_CODING"))
	assert.Contains(t, out, "TOPIC_MAPS")
	assert.Contains(t, out, "SUB_TOPIC_HASHING")

	_, err = execute(t, &App{Catalog: &stubCatalog{err: domain.NewCatalogUnavailableError(errors.New("dns"))}}, "catalog")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

type refreshableCatalog struct {
	stubCatalog
	refreshed  int
	refreshErr error
}

func (r *refreshableCatalog) Refresh(context.Context) error {
	r.refreshed++
	return r.refreshErr
}

func TestCatalogCmd_Refresh(t *testing.T) {
	sets := domain.ReferenceCatalog{"CODING": {Topics: map[string]struct{}{"TOPIC_ARRAYS": {}}}}

	t.Run("drops cached copy before loading", func(t *testing.T) {
		provider := &refreshableCatalog{stubCatalog: stubCatalog{catalog: sets}}

		out, err := execute(t, &App{Catalog: provider}, "catalog", "--refresh")
		require.NoError(t, err)
		assert.Equal(t, 1, provider.refreshed)
		assert.Contains(t, out, "CODING")
	})

	t.Run("without flag keeps cache", func(t *testing.T) {
		provider := &refreshableCatalog{stubCatalog: stubCatalog{catalog: sets}}

		_, err := execute(t, &App{Catalog: provider}, "catalog")
		require.NoError(t, err)
		assert.Equal(t, 0, provider.refreshed)
	})

	t.Run("refresh error is returned", func(t *testing.T) {
		provider := &refreshableCatalog{stubCatalog: stubCatalog{catalog: sets}, refreshErr: errors.New("redis down")}

		_, err := execute(t, &App{Catalog: provider}, "catalog", "--refresh")
		assert.ErrorContains(t, err, "redis down")
	})

	t.Run("providers without cache ignore the flag", func(t *testing.T) {
		_, err := execute(t, &App{Catalog: &stubCatalog{catalog: sets}}, "catalog", "--refresh")
		assert.NoError(t, err)
	})
}

func TestRenderTable(t *testing.T) {
	got := RenderTable([]string{"KEY", "N"}, [][]string{{"CODING", "2"}, {"SQL", "10"}})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "KEY     N", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "CODING  2", lines[2])
	assert.Equal(t, "SQL     10", lines[3])
}
