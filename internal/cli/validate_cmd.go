package cli

import (
	"errors"
	"fmt"
	"os"

	"tag-validator/internal/domain"
	"tag-validator/internal/extract"
	"tag-validator/internal/service"

	"github.com/spf13/cobra"
)

type validateFlags struct {
	sheet     string
	archive   string
	course    string
	module    string
	unit      string
	extraUnit string
	company   string
	setSize   int
	csvPath   string
	debug     bool
}

func newValidateCmd(withApp appRunner) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the tags of questions in a spreadsheet and/or zip archive",
		Example: `  tagcheck validate --sheet questions.xlsx --course "Python Basics" --unit Loops
  tagcheck validate --archive export.zip --set-size 5 --csv issues.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.sheet == "" && f.archive == "" {
				return errors.New("provide --sheet, --archive, or both")
			}
			if f.setSize < 0 {
				return fmt.Errorf("--set-size must not be negative, got %d", f.setSize)
			}
			return withApp(cmd, func(app *App) error {
				return runValidate(cmd, app, f)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.sheet, "sheet", "", "questions spreadsheet (.xlsx or .csv)")
	flags.StringVar(&f.archive, "archive", "", "zip archive of question JSON files")
	flags.StringVar(&f.course, "course", "", "expected course name")
	flags.StringVar(&f.module, "module", "", "expected module name")
	flags.StringVar(&f.unit, "unit", "", "expected unit name")
	flags.StringVar(&f.extraUnit, "extra-unit", "", "second accepted unit name")
	flags.StringVar(&f.company, "company", "", "expected company name")
	flags.IntVar(&f.setSize, "set-size", 0, "questions per set for QUESTION_/SET_ numbering (0 disables)")
	flags.StringVar(&f.csvPath, "csv", "", "write questions with issues to this CSV file")
	flags.BoolVar(&f.debug, "debug", false, "also list questions that passed")
	return cmd
}

func runValidate(cmd *cobra.Command, app *App, f validateFlags) error {
	var sheet, archive *extract.Result
	if f.sheet != "" {
		file, err := os.Open(f.sheet)
		if err != nil {
			return fmt.Errorf("opening sheet: %w", err)
		}
		defer file.Close()
		if sheet, err = app.Extractor.Spreadsheet(f.sheet, file); err != nil {
			return err
		}
	}
	if f.archive != "" {
		file, err := os.Open(f.archive)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer file.Close()
		info, err := file.Stat()
		if err != nil {
			return fmt.Errorf("reading archive size: %w", err)
		}
		if archive, err = app.Extractor.Archive(f.archive, file, info.Size()); err != nil {
			return err
		}
	}
	batch := extract.Batch(sheet, archive)

	opts := domain.ValidationOptions{
		Optional: domain.OptionalTagConfigFromNames(f.course, f.module, []string{f.unit, f.extraUnit}, f.company),
		SetSize:  f.setSize,
	}
	report, err := app.Validation.Run(cmd.Context(), batch.Records, opts)
	if err != nil {
		return err
	}
	report.Warnings = batch.Warnings

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, RenderReport(report, opts.Optional, f.debug))

	if f.csvPath != "" {
		if err := writeCSV(f.csvPath, report); err != nil {
			return err
		}
		fmt.Fprintln(out, StyleDim.Render("Issues written to "+f.csvPath))
	}

	if report.Failed > 0 {
		return ErrValidationFailed
	}
	return nil
}

func writeCSV(path string, report *domain.ValidationReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	if err := service.WriteReportCSV(file, report, true); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
