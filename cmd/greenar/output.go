package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alnah/go-greenar/internal/hints"
	"github.com/alnah/go-greenar/internal/yamlutil"
)

// Output formats.
const (
	formatPlain = "plain"
	formatYAML  = "yaml"
	formatTable = "table"
)

// checkFormat validates format against the formats a command supports.
func checkFormat(format string, valid ...string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if slices.Contains(valid, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q%s", ErrUnknownFormat, format, hints.ForUnknownFormat(valid))
}

// writeYAML encodes v to w.
func writeYAML(w io.Writer, v any) error {
	out, err := yamlutil.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// Table palette, kept close to the front end's greens.
var (
	colorHeader = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#81c784"}
	colorBorder = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

// writeTable renders rows under headers as a bordered table.
func writeTable(w io.Writer, headers []string, rows [][]string, noColor bool) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	borderStyle := lipgloss.NewStyle()
	if !noColor {
		headerStyle = headerStyle.Foreground(colorHeader)
		borderStyle = borderStyle.Foreground(colorBorder)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
