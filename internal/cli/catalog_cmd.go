package cli

import (
	"fmt"
	"sort"

	"tag-validator/internal/domain"

	"github.com/spf13/cobra"
)

func newCatalogCmd(withApp appRunner) *cobra.Command {
	var verbose, refresh bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the reference catalog keys and tag counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *App) error {
				if refresh {
					if r, ok := app.Catalog.(domain.CatalogRefresher); ok {
						if err := r.Refresh(cmd.Context()); err != nil {
							return fmt.Errorf("refresh catalog: %w", err)
						}
					}
				}
				catalog, err := app.Catalog.Load(cmd.Context())
				if err != nil {
					return err
				}

				keys := make([]string, 0, len(catalog))
				for k := range catalog {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				rows := make([][]string, 0, len(keys))
				for _, k := range keys {
					sets := catalog[k]
					rows = append(rows, []string{k, fmt.Sprint(len(sets.Topics)), fmt.Sprint(len(sets.SubTopics))})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, RenderTable([]string{"KEY", "TOPICS", "SUB-TOPICS"}, rows))
				if verbose {
					for _, k := range keys {
						fmt.Fprintln(out)
						fmt.Fprintln(out, Header(k))
						for _, t := range sortedSet(catalog[k].Topics) {
							fmt.Fprintln(out, "  "+t)
						}
						for _, t := range sortedSet(catalog[k].SubTopics) {
							fmt.Fprintln(out, "  "+StyleDim.Render(t))
						}
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every topic and sub-topic")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "drop the cached catalog and download it again")
	return cmd
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
