package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/validation"

	"github.com/spf13/cobra"
)

// resource holds what list, rm and the form helpers need to know about one entity.
type resource[T any] struct {
	noun    string
	plural  string
	ctl     func(cat *catalog.Catalog) *listing.Controller[T]
	headers []string
	row     func(cat *catalog.Catalog, rec T) []string
	label   func(cat *catalog.Catalog, rec T) string
}

type listFlags struct {
	search string
	sort   string
	desc   bool
	page   int
}

func (r resource[T]) listCmd(app *App) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + r.plural,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				ctl := r.ctl(cat)
				ctl.SetSearch(f.search)
				field := f.sort
				if field == "" && f.desc {
					field = "id"
				}
				if field != "" {
					if err := ctl.SetSort(field); err != nil {
						return fmt.Errorf("--sort %s: %w", field, err)
					}
					if f.desc {
						_ = ctl.SetSort(field)
					}
				}
				ctl.SetPage(f.page)

				page := ctl.View()
				rows := make([][]string, 0, len(page.Data))
				for _, rec := range page.Data {
					rows = append(rows, r.row(cat, rec))
				}
				return writeOut(cmd, app, view[T]{headers: r.headers, rows: rows, page: page, noun: r.plural})
			})
		},
	}

	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive search text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort field")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	return cmd
}

func (r resource[T]) rmCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a " + r.noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				confirm := func(rec T) bool {
					return yes || ask(cmd, fmt.Sprintf("Delete %s %s?", r.noun, r.label(cat, rec)))
				}
				err := r.ctl(cat).Remove(cmd.Context(), id, confirm)
				if errors.Is(err, listing.ErrNotConfirmed) {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", r.noun, id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// create submits rec through a fresh create form.
func (r resource[T]) create(cmd *cobra.Command, app *App, cat *catalog.Catalog, rec T) error {
	ctl := r.ctl(cat)
	if err := ctl.OpenCreate(rec); err != nil {
		return err
	}
	saved, err := ctl.Submit(cmd.Context(), rec)
	if err != nil {
		return formError(ctl.Modal().Errors, err)
	}
	return writeRecord(cmd, app, r.headers, r.row(cat, saved), saved)
}

// edit opens the form on id, lets change modify the stored values and submits the result.
func (r resource[T]) edit(cmd *cobra.Command, app *App, cat *catalog.Catalog, id int, change func(T) T) error {
	ctl := r.ctl(cat)
	if err := ctl.OpenEdit(id); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return fmt.Errorf("%s %d not found", r.noun, id)
		}
		return err
	}
	saved, err := ctl.Submit(cmd.Context(), change(ctl.Modal().Record))
	if err != nil {
		return formError(ctl.Modal().Errors, err)
	}
	return writeRecord(cmd, app, r.headers, r.row(cat, saved), saved)
}

// formError lists field errors one per line, the way the form shows them inline.
func formError(fields validation.Errors, err error) error {
	if len(fields) == 0 {
		return err
	}
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, "invalid input:")
	for _, fe := range fields {
		lines = append(lines, "  "+fe.Field+": "+fe.Message)
	}
	return errors.New(strings.Join(lines, "\n"))
}

func ask(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func money(v float64) string {
	return "Rp " + listing.Ftoa(v)
}
