// Package cli implements the tagcheck command line.
package cli

import (
	"context"
	"errors"

	"tag-validator/internal/domain"
	"tag-validator/internal/extract"

	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned by validate when any question has issues.
var ErrValidationFailed = errors.New("one or more questions have tag issues")

// App holds references to the services used by CLI commands.
type App struct {
	Validation domain.ValidationService
	Catalog    domain.CatalogProvider
	Extractor  *extract.Extractor
}

// Loader builds the App on demand. The returned func releases its resources.
// Commands that need no services never call it.
type Loader func(ctx context.Context, catalogFile string) (*App, func(), error)

// NewRootCmd creates the top-level "tagcheck" command and registers all
// subcommands against the provided Loader.
func NewRootCmd(load Loader) *cobra.Command {
	var catalogFile string

	root := &cobra.Command{
		Use:           "tagcheck",
		Short:         "Validate question tags against the reference catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "read the reference catalog from a local JSON file instead of the configured URL")

	withApp := func(cmd *cobra.Command, fn func(app *App) error) error {
		app, release, err := load(cmd.Context(), catalogFile)
		if err != nil {
			return err
		}
		defer release()
		return fn(app)
	}

	root.AddCommand(
		newValidateCmd(withApp),
		newFormatCmd(),
		newCatalogCmd(withApp),
	)
	return root
}

type appRunner func(cmd *cobra.Command, fn func(app *App) error) error
