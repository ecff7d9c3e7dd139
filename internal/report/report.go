// Package report renders the final statistics report from an accumulator
// set once the run loop has finished.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/descstat/pkg/stat"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrUnknownFormat indicates a format name outside text, table and json.
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes one report for the set to w in the given format, preserving
// set order. The text format is the plain `name = value` contract output.
func Render(w io.Writer, set stat.Set, format string) error {
	switch format {
	case FormatText:
		return renderText(w, set)
	case FormatTable:
		return renderTable(w, set)
	case FormatJSON:
		return renderJSON(w, set)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// formatValue renders a result with Go's shortest-roundtrip decimal
// formatting; NaN comes out as the literal "NaN".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func renderText(w io.Writer, set stat.Set) error {
	for _, acc := range set {
		_, err := fmt.Fprintf(w, "%s = %s\n", acc.Name(), formatValue(acc.Result()))
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

func renderTable(w io.Writer, set stat.Set) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"statistic", "value"})

	for _, acc := range set {
		result := acc.Result()

		rendered := formatValue(result)
		if math.IsNaN(result) {
			rendered = color.New(color.FgYellow).Sprint(rendered)
		}

		tbl.AppendRow(table.Row{acc.Name(), rendered})
	}

	tbl.AppendFooter(table.Row{"statistics", len(set)})
	tbl.Render()

	return nil
}

// jsonEntry is one statistic in the json report. NaN is not representable in
// JSON, so undefined results marshal as null.
type jsonEntry struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

func renderJSON(w io.Writer, set stat.Set) error {
	entries := make([]jsonEntry, 0, len(set))

	for _, acc := range set {
		result := acc.Result()

		entry := jsonEntry{Name: acc.Name()}
		if !math.IsNaN(result) {
			entry.Value = &result
		}

		entries = append(entries, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(entries)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
