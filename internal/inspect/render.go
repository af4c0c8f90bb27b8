// Package inspect renders resolved variant output for the styled CLI.
package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/styled"
)

// MatrixRow is one resolved option combination.
type MatrixRow struct {
	Selection string // "intent=primary size=lg", "-" when everything is omitted
	Class     string // resolved class string, "-" when absent
	Extra     string // remaining pass-through properties, "k=v" pairs
}

// BuildMatrix resolves every option combination of the component into
// display rows, in the component's deterministic matrix order.
func BuildMatrix(c *styled.Component) []MatrixRow {
	combos := c.Matrix()
	rows := make([]MatrixRow, 0, len(combos))

	for _, combo := range combos {
		props := c.Resolve(styled.Props(combo))
		rows = append(rows, MatrixRow{
			Selection: formatSelection(combo),
			Class:     classColumn(props),
			Extra:     formatExtras(props),
		})
	}
	return rows
}

// RenderMatrix writes the component's matrix as an aligned table.
func RenderMatrix(w io.Writer, name string, rows []MatrixRow, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleHeader, name, useColors))
	fmt.Fprintln(w, strings.Repeat("-", len(name)))

	selWidth := len("SELECTION")
	classWidth := len("CLASS")
	for _, row := range rows {
		if len(row.Selection) > selWidth {
			selWidth = len(row.Selection)
		}
		if len(row.Class) > classWidth {
			classWidth = len(row.Class)
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", selWidth, "SELECTION", classWidth, "CLASS", "PROPS")
	for _, row := range rows {
		// Pad before colorizing so escape codes don't skew the columns.
		sel := fmt.Sprintf("%-*s", selWidth, row.Selection)
		class := fmt.Sprintf("%-*s", classWidth, row.Class)
		fmt.Fprintf(w, "%s  %s  %s\n",
			RenderStyle(StyleSelection, sel, useColors),
			RenderStyle(StyleClass, class, useColors),
			RenderStyle(StyleDim, row.Extra, useColors))
	}
	fmt.Fprintln(w)
}

// RenderProps writes one resolved property set, reserved keys first.
func RenderProps(w io.Writer, name string, props styled.Props, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleHeader, name, useColors))

	if class, ok := props[styled.ClassKey]; ok {
		fmt.Fprintf(w, "  class: %s\n", RenderStyle(StyleClass, fmt.Sprint(class), useColors))
	}
	if style, ok := props[styled.StyleKey].(styled.Style); ok {
		fmt.Fprintf(w, "  style: %s\n", formatStyle(style))
	}

	for _, key := range sortedPlainKeys(props) {
		fmt.Fprintf(w, "  %s: %s\n", key, RenderStyle(StyleDim, fmt.Sprint(props[key]), useColors))
	}
}

func formatSelection(sel styled.Selection) string {
	if len(sel) == 0 {
		return "-"
	}
	names := make([]string, 0, len(sel))
	for name := range sel {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%v", name, sel[name])
	}
	return strings.Join(pairs, " ")
}

func classColumn(props styled.Props) string {
	if class, ok := props[styled.ClassKey]; ok {
		return fmt.Sprint(class)
	}
	return "-"
}

func formatExtras(props styled.Props) string {
	var pairs []string
	for _, key := range sortedPlainKeys(props) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, props[key]))
	}
	if style, ok := props[styled.StyleKey].(styled.Style); ok {
		pairs = append(pairs, fmt.Sprintf("style=[%s]", formatStyle(style)))
	}
	return strings.Join(pairs, " ")
}

func formatStyle(s styled.Style) string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	decls := make([]string, len(names))
	for i, name := range names {
		decls[i] = name + ": " + s[name]
	}
	return strings.Join(decls, "; ")
}

// sortedPlainKeys lists the non-reserved keys in sorted order.
func sortedPlainKeys(props styled.Props) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		if key == styled.ClassKey || key == styled.StyleKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
