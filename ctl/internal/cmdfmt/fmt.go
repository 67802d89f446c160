package cmdfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Printf is like fmt.Printf except it prints to stderr instead of stdout. It is intended for
// diagnostics that should not mix with command output, for example when commands are piped in.
func Printf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

// Setting is one row printed by PrintSettings.
type Setting struct {
	Key   string
	Value any
}

// PrintSettings prints the provided settings as a two column table. Use a very simple style with
// only spaces as separators to make parsing easier.
func PrintSettings(w io.Writer, settings []Setting) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.Style{
		Box: table.BoxStyle{
			PaddingRight:  "  ",
			PageSeparator: "\n",
		},
		Format: table.FormatOptions{
			Header: text.FormatUpper,
		},
	})
	tbl.AppendHeader(table.Row{"setting", "value"})
	for _, s := range settings {
		value := s.Value
		if str, ok := value.(string); ok && str == "" {
			value = "(none)"
		}
		tbl.AppendRow(table.Row{s.Key, value})
	}
	tbl.Render()
}
