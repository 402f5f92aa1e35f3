package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlident/pkg/identify"
)

// IdentifyOptions holds flags for the identify command.
type IdentifyOptions struct {
	Format string
	Strict bool
	Watch  bool
}

// NewIdentifyCommand creates the identify command.
func NewIdentifyCommand() *cobra.Command {
	opts := &IdentifyOptions{}

	cmd := &cobra.Command{
		Use:   "identify [file]",
		Short: "Split a SQL script into statements and classify each one",
		Long: `Identify reads SQL from a file (or stdin when no file is given)
and prints every statement with its type, execution behavior, and byte
offsets within the input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			if opts.Format == "" {
				opts.Format = cmdCtx.Cfg.OutputFormat
			}
			if !cmd.Flags().Changed("strict") {
				opts.Strict = cmdCtx.Cfg.Strict
			}

			if opts.Watch {
				if len(args) == 0 || args[0] == "-" {
					return fmt.Errorf("--watch requires a file argument")
				}
				return watchAndIdentify(cmd, cmdCtx, args[0], opts)
			}

			input, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return identifyOnce(cmd, cmdCtx, input, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (table|json|yaml|csv|markdown)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on unrecognized statements")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-identify whenever the file changes")

	return cmd
}

func identifyOnce(cmd *cobra.Command, cmdCtx *CommandContext, input, name string, opts *IdentifyOptions) error {
	identifyOpts := []identify.Option{
		identify.WithDialect(cmdCtx.Cfg.Dialect),
		identify.WithStrict(opts.Strict),
	}
	if cmdCtx.Cfg.Verbose {
		identifyOpts = append(identifyOpts, identify.WithLogger(cmdCtx.Logger))
	}

	results, err := identify.Identify(input, identifyOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	cmdCtx.Logger.Debug("identified statements", "file", name, "count", len(results))
	return renderStatements(cmd.OutOrStdout(), results, normalizeFormat(opts.Format))
}

// watchAndIdentify re-runs identification every time the file is written.
// Events are debounced since editors often fire several writes per save.
func watchAndIdentify(cmd *cobra.Command, cmdCtx *CommandContext, path string, opts *IdentifyOptions) error {
	run := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			cmdCtx.Renderer.Errorf("failed to read %s: %v", path, err)
			return
		}
		if err := identifyOnce(cmd, cmdCtx, string(data), path, opts); err != nil {
			cmdCtx.Renderer.Errorf("%v", err)
		}
	}

	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	cmdCtx.Renderer.Printf("Watching %s (Ctrl+C to stop)\n", path)
	return watchLoop(cmd.Context(), watcher, run)
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, run func()) error {
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, run)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// normalizeFormat maps renderer modes to statement output formats.
func normalizeFormat(format string) string {
	switch format {
	case "auto", "text", "":
		return "table"
	}
	return format
}
