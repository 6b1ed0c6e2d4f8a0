package cli

import (
	"fmt"
	"strings"

	"tag-validator/internal/domain"

	"github.com/spf13/cobra"
)

var formatPrefixes = map[string]string{
	"course":    domain.PrefixCourse,
	"module":    domain.PrefixModule,
	"unit":      domain.PrefixUnit,
	"company":   domain.PrefixCompany,
	"topic":     domain.PrefixTopic,
	"sub_topic": domain.PrefixSubTopic,
	"source":    domain.PrefixSource,
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <prefix> <name>",
		Short: "Print the canonical tag for a free-text name",
		Long:  "Prefix is one of course, module, unit, company, topic, sub_topic, source (or the tag prefix itself, e.g. UNIT_).",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := resolvePrefix(args[0])
			if err != nil {
				return err
			}
			tag := domain.FormatTagName(strings.Join(args[1:], " "), prefix)
			if tag == "" {
				return fmt.Errorf("nothing usable left in %q", strings.Join(args[1:], " "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}

func resolvePrefix(arg string) (string, error) {
	key := strings.ToLower(strings.TrimSuffix(arg, "_"))
	if prefix, ok := formatPrefixes[key]; ok {
		return prefix, nil
	}
	return "", fmt.Errorf("unknown prefix %q", arg)
}
