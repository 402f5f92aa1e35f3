package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlident/pkg/dialect"
	"github.com/leapstack-labs/sqlident/pkg/identify"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively identify SQL statements",
		Long: `Start an interactive session. SQL is accumulated across lines until a
trailing semicolon, then identified. Dot-commands control the session:

  .dialect [name]   show or switch the active dialect
  .strict [on|off]  show or toggle strict mode
  .help             show available commands
  .quit             exit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			return runREPL(cmd, cmdCtx)
		},
	}
}

func runREPL(cmd *cobra.Command, cmdCtx *CommandContext) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlident> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(".dialect", dialectCompletions()...),
			readline.PcItem(".strict", readline.PcItem("on"), readline.PcItem("off")),
			readline.PcItem(".help"),
			readline.PcItem(".quit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	dialectName := cmdCtx.Cfg.Dialect
	strict := cmdCtx.Cfg.Strict

	_, _ = fmt.Fprintf(out, "sqlident REPL (dialect: %s)\n", dialectName)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("sqlident> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") && buffer.Len() == 0 {
			quit := handleDotCommand(cmd, line, &dialectName, &strict)
			if quit {
				break
			}
			continue
		}

		// Accumulate multi-line SQL until a trailing semicolon.
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString("\n")
			rl.SetPrompt("     ...> ")
			continue
		}
		rl.SetPrompt("sqlident> ")

		input := buffer.String()
		buffer.Reset()

		results, err := identify.Identify(input,
			identify.WithDialect(dialectName),
			identify.WithStrict(strict),
		)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if err := renderStatements(out, results, "table"); err != nil {
			return err
		}
	}

	return nil
}

// handleDotCommand executes a REPL dot-command and reports whether the
// session should end.
func handleDotCommand(cmd *cobra.Command, line string, dialectName *string, strict *bool) bool {
	out := cmd.OutOrStdout()
	fields := strings.Fields(line)

	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		_, _ = fmt.Fprintln(out, ".dialect [name]   show or switch the active dialect")
		_, _ = fmt.Fprintln(out, ".strict [on|off]  show or toggle strict mode")
		_, _ = fmt.Fprintln(out, ".quit             exit")
	case ".dialect":
		if len(fields) < 2 {
			_, _ = fmt.Fprintf(out, "dialect: %s (available: %s)\n", *dialectName, strings.Join(dialect.List(), ", "))
			return false
		}
		if _, ok := dialect.Get(fields[1]); !ok {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown dialect %q\n", fields[1])
			return false
		}
		*dialectName = fields[1]
		_, _ = fmt.Fprintf(out, "dialect set to %s\n", *dialectName)
	case ".strict":
		if len(fields) < 2 {
			_, _ = fmt.Fprintf(out, "strict: %t\n", *strict)
			return false
		}
		*strict = fields[1] == "on"
		_, _ = fmt.Fprintf(out, "strict set to %t\n", *strict)
	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown command %s\n", fields[0])
	}
	return false
}

func dialectCompletions() []readline.PrefixCompleterInterface {
	names := dialect.List()
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return items
}
