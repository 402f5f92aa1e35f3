package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlident/internal/cli/output"
	"github.com/leapstack-labs/sqlident/pkg/dialect"

	_ "github.com/leapstack-labs/sqlident/pkg/dialects/generic"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/psql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/sqlite"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the supported SQL dialects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			names := dialect.List()
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(names)
			}
			for _, name := range names {
				r.Println(name)
			}
			return nil
		},
	}
}
