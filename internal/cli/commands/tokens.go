package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlident/pkg/identify"
)

// NewTokensCommand creates the tokens command, which dumps the raw token
// stream the splitter works from.
func NewTokensCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the lexical token stream for a SQL script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			input, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			// Tokenization never rejects input, so strictness is irrelevant.
			parsed, err := identify.Parse(input,
				identify.WithDialect(cmdCtx.Cfg.Dialect),
				identify.WithStrict(false),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			if format == "" {
				format = normalizeFormat(cmdCtx.Cfg.OutputFormat)
			}
			return renderTokens(cmd.OutOrStdout(), parsed.Tokens, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (table|json)")
	return cmd
}
