package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"BE-HOTEL-ADMIN/app/listing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// view is what a listing command prints: rows for the table, the page for json.
type view[T any] struct {
	headers []string
	rows    [][]string
	page    listing.Page[T]
	noun    string
}

func writeOut[T any](cmd *cobra.Command, app *App, v view[T]) error {
	w := cmd.OutOrStdout()
	switch app.Format {
	case formatJSON:
		return writeJSON(w, v.page)
	case formatTable, "":
		renderTable(w, v.headers, v.rows)
		footer := fmt.Sprintf("page %d of %d, %d %s", v.page.Page, max(v.page.TotalPage, 1), v.page.TotalData, v.noun)
		fmt.Fprintln(w, footerStyle.Render(footer))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or json)", app.Format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

// writeRecord prints one saved record, as json or as a one-row table.
func writeRecord(cmd *cobra.Command, app *App, headers, row []string, rec any) error {
	if app.Format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	renderTable(cmd.OutOrStdout(), headers, [][]string{row})
	return nil
}
