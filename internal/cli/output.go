package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
}

// Printer renders decoded JSON values.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
}

// Print writes v in the printer's format. v is expected to be what
// encoding/json decodes into: maps, slices and scalars.
func (p Printer) Print(v any) error {
	switch p.Format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.Out, string(data))
		return err
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.Out.Write(data)
		return err
	case OutputFormatTable, "":
		return p.printTable(v)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

// PrintJSONText decodes text as JSON before printing. Text that is not JSON is
// written as is.
func (p Printer) PrintJSONText(s string) error {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		_, err = fmt.Fprintln(p.Out, s)
		return err
	}
	return p.Print(v)
}

func (p Printer) printTable(v any) error {
	switch data := v.(type) {
	case map[string]any:
		p.keyValueTable(data)
	case []any:
		p.arrayTable(data)
	default:
		_, err := fmt.Fprintln(p.Out, data)
		return err
	}
	return nil
}

func (p Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p Printer) keyValueTable(data map[string]any) {
	t := p.newTable()
	t.AppendHeader(table.Row{text.FgHiCyan.Sprint("KEY"), text.FgHiCyan.Sprint("VALUE")})
	for _, k := range sortedKeys(data) {
		t.AppendRow(table.Row{k, cellValue(data[k])})
	}
	t.Render()
}

func (p Printer) arrayTable(data []any) {
	if len(data) == 0 {
		fmt.Fprintln(p.Out, text.FgYellow.Sprint("No items found"))
		return
	}

	first, ok := data[0].(map[string]any)
	if !ok {
		t := p.newTable()
		for _, item := range data {
			t.AppendRow(table.Row{cellValue(item)})
		}
		t.Render()
		return
	}

	columns := sortedKeys(first)
	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t := p.newTable()
	t.AppendHeader(header)
	for _, item := range data {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = cellValue(obj[col])
		}
		t.AppendRow(row)
	}
	t.Render()
}

// cellValue flattens nested values to compact JSON so they fit one cell.
func cellValue(v any) any {
	switch v := v.(type) {
	case nil:
		return text.FgHiBlack.Sprint("-")
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return truncate(string(data), 80)
	case bool:
		if v {
			return text.FgGreen.Sprint("true")
		}
		return text.FgRed.Sprint("false")
	default:
		return v
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
