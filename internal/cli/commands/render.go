package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlident/pkg/identify"
	"github.com/leapstack-labs/sqlident/pkg/token"
)

const previewLimit = 40

// renderStatements writes the identified statements in the requested
// format: table (default), json, csv, or markdown.
func renderStatements(w io.Writer, results []identify.Result, format string) error {
	switch format {
	case "json":
		return renderJSON(w, results)
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(results)
	case "csv":
		renderStatementTable(w, results, func(t table.Writer) { t.RenderCSV() })
		return nil
	case "md", "markdown":
		renderStatementTable(w, results, func(t table.Writer) { t.RenderMarkdown() })
		return nil
	default:
		renderStatementTable(w, results, func(t table.Writer) { t.Render() })
		_, _ = fmt.Fprintf(w, "(%d statements)\n", len(results))
		return nil
	}
}

func renderStatementTable(w io.Writer, results []identify.Result, render func(table.Writer)) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Execution", "Start", "End", "Statement"})

	for i, res := range results {
		t.AppendRow(table.Row{i + 1, res.Type, res.ExecutionType, res.Start, res.End, preview(res.Text)})
	}
	render(t)
}

// renderTokens writes the raw token stream.
func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	if format == "json" {
		return renderJSON(w, tokens)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Start", "End", "Value"})
	for _, tok := range tokens {
		t.AppendRow(table.Row{tok.Type, tok.Start, tok.End, preview(tok.Value)})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d tokens)\n", len(tokens))
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// preview truncates long values so table rows stay on one line.
func preview(s string) string {
	out := make([]rune, 0, previewLimit)
	for _, r := range s {
		if r == '\n' || r == '\t' {
			r = ' '
		}
		out = append(out, r)
		if len(out) >= previewLimit {
			return string(out) + "…"
		}
	}
	return string(out)
}
