package app

import (
	"fmt"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type optionCount struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Books int    `json:"books"`
}

func newGenresCmd() *cobra.Command {
	return newOptionsCmd("genres", "List genres with book counts",
		func(c *catalog.Catalogue) []catalog.Option { return c.GenreOptions() },
		func(b catalog.Book, key string) bool {
			for _, g := range b.Genres {
				if g == key {
					return true
				}
			}
			return false
		})
}

func newAuthorsCmd() *cobra.Command {
	return newOptionsCmd("authors", "List authors with book counts",
		func(c *catalog.Catalogue) []catalog.Option { return c.AuthorOptions() },
		func(b catalog.Book, key string) bool { return b.Author == key })
}

// newOptionsCmd builds a command printing the entries of one search form
// selector, in selector order.
func newOptionsCmd(use, short string, opts func(*catalog.Catalogue) []catalog.Option, has func(catalog.Book, string) bool) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := countOptions(cat, opts(cat), has)

			w := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(counts, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding JSON: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}

			for _, e := range counts {
				fmt.Fprintf(w, "  %-12s %-28s %s\n",
					color.CyanString(e.Key),
					e.Name,
					color.HiBlackString("(%d)", e.Books),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// countOptions pairs every non-"All" option with its number of books.
func countOptions(c *catalog.Catalogue, opts []catalog.Option, has func(catalog.Book, string) bool) []optionCount {
	out := make([]optionCount, 0, len(opts))
	for _, o := range opts {
		if o.Value == catalog.AllOption {
			continue
		}
		n := 0
		for _, b := range c.Books {
			if has(b, o.Value) {
				n++
			}
		}
		out = append(out, optionCount{Key: o.Value, Name: o.Label, Books: n})
	}
	return out
}
