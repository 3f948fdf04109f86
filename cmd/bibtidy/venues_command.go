package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newVenuesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List the effective venue rule table in priority order",
		Long: `List every venue rule the matcher applies, built-ins first, then rules
added through the configuration. Later rules win when several match, so the
highest priority rules are at the bottom of the table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			rules := ctx.venueMatcher(cfg).Rules()
			rows := make([][]string, 0, len(rules))
			for i, rule := range rules {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					rule.Name,
					strings.Join(rule.Keywords, ", "),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Canonical Name", "Keywords"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
