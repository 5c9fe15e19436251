// Package export renders reconciled report tables: console output in table,
// JSON, or YAML form, CSV and HTML files on disk, object storage uploads, and
// Confluence page sync.
package export

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/report"
)

// Format types for console output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter renders a reconciled table to a writer.
type Formatter interface {
	Format(w io.Writer, t *report.Table) error
}

// NewFormatter creates the appropriate formatter for the format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// TableFormatter renders an aligned text table with a leading ordinal column.
type TableFormatter struct{}

// Format implements the Formatter interface for table output.
func (f *TableFormatter) Format(w io.Writer, t *report.Table) error {
	headers := make([]any, 0, len(t.Headers)+1)
	headers = append(headers, "#")
	for _, h := range t.Headers {
		headers = append(headers, h)
	}

	table := tablewriter.NewTable(w)
	table.Header(headers...)

	for i, row := range t.Rows {
		cells := make([]any, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i+1))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

// JSONFormatter renders rows as an array of header-keyed objects.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, t *report.Table) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(rowMaps(t))
}

// YAMLFormatter renders rows as a sequence of header-keyed mappings.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, t *report.Table) error {
	data, err := yaml.MarshalWithOptions(rowMaps(t),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// rowMaps converts the positional rows into header-keyed maps with the same
// 1-based ordinal the table view shows.
func rowMaps(t *report.Table) []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for i, row := range t.Rows {
		m := make(map[string]any, len(row)+1)
		m["#"] = i + 1
		for j, cell := range row {
			if j < len(t.Headers) {
				m[t.Headers[j]] = cell
			}
		}
		out = append(out, m)
	}
	return out
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", errors.NewValidationError("format", s, "must be one of: table, json, yaml")
	}
}
