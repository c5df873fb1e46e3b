package truthtable

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mitchellh/colorstring"
)

func boolCell(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// Write writes t on w, one line per row, columns separated by spaces.
// The last column holds the value of the formula; if color is true,
// it is printed green when true and red when false.
func Write(w io.Writer, t *Table, color bool) error {
	colorize := &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !color,
		Reset:   true,
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append(append([]string{}, t.Vars...), t.Formula)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("could not write truth table: %w", err)
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row.Values)+1)
		for i, val := range row.Values {
			cells[i] = boolCell(val)
		}
		res := "[red]F"
		if row.Result {
			res = "[green]T"
		}
		cells[len(row.Values)] = colorize.Color(res)
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("could not write truth table: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not write truth table: %w", err)
	}
	return nil
}
