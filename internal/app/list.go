package app

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/pager"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// listBook is the JSON form of one book in `list --json`.
type listBook struct {
	Index     int      `json:"index"`
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Genres    []string `json:"genres"`
	Published string   `json:"published,omitempty"`
	Image     string   `json:"image,omitempty"`
}

type listResult struct {
	pager.Info
	Remaining int        `json:"remaining"`
	Filter    *filterOut `json:"filter,omitempty"`
	Books     []listBook `json:"books"`
}

type filterOut struct {
	Genre  string `json:"genre"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

func newListCmd() *cobra.Command {
	var (
		ff      filterFlags
		page    int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalogue",
		Long: `Print one page of the (optionally filtered) catalogue.

Examples:
  bookconnect list
  bookconnect list --page 2
  bookconnect list --genre scifi --title time --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1, got %d", page)
			}
			f, err := ff.filter(cat)
			if err != nil {
				return err
			}

			state := browse.New(cat, cfg.Display.PageSize)
			if !f.IsZero() {
				state.Submit(f)
			}
			items := seekPage(state, page)
			if last := max(1, state.Page().TotalPages); page > last {
				return fmt.Errorf("page %d is past the last page (%d)", page, last)
			}

			if jsonOut {
				return writeListJSON(cmd.OutOrStdout(), state, items)
			}
			printPage(cmd.OutOrStdout(), state, items)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// seekPage advances state to page n and returns the items of that page
// only. Pages past the end return nothing.
func seekPage(state *browse.State, n int) []catalog.Match {
	items := state.Visible()
	for p := 1; p < n; p++ {
		if !state.CanLoadMore() {
			return nil
		}
		items = state.ShowMore()
	}
	return items
}

func writeListJSON(w io.Writer, state *browse.State, items []catalog.Match) error {
	c := state.Catalogue()
	res := listResult{
		Info:      state.Page(),
		Remaining: state.Remaining(),
		Books:     make([]listBook, 0, len(items)),
	}
	if f, ok := state.LastFilter(); ok {
		res.Filter = &filterOut{Genre: f.Genre, Author: f.Author, Title: f.Title}
	}
	for _, m := range items {
		b := m.Book
		lb := listBook{
			Index:  m.Index,
			ID:     b.ID,
			Title:  b.Title,
			Author: c.AuthorName(b),
			Genres: c.GenreNames(b),
			Image:  b.Image,
		}
		if !b.Published.IsZero() {
			lb.Published = b.Published.Format("2006-01-02")
		}
		res.Books = append(res.Books, lb)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
