package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the catalogue (interactive TUI or text output)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.filter(cat)
			if err != nil {
				return err
			}

			if tui.ShouldUseTUI(cmd) {
				return runBrowser(f)
			}

			state := browse.New(cat, cfg.Display.PageSize)
			if !f.IsZero() {
				state.Submit(f)
			}
			printPage(cmd.OutOrStdout(), state, state.Visible())
			return nil
		},
	}

	ff.register(cmd)
	return cmd
}

// printPage writes items as text, followed by the show-more line.
func printPage(w io.Writer, state *browse.State, items []catalog.Match) {
	if state.Empty() {
		fmt.Fprintln(w, browse.NoResultsMessage)
		fmt.Fprintf(w, "\nShow more %s\n", state.RemainingLabel())
		return
	}

	c := state.Catalogue()
	info := state.Page()
	if len(items) == 0 {
		fmt.Fprintln(w, "No books in the catalogue.")
	} else {
		header(w, "── Books %d-%d of %d", info.Shown-len(items)+1, info.Shown, info.Total)
	}
	for _, m := range items {
		printBookLine(w, c, m.Book)
	}

	fmt.Fprintln(w)
	if state.CanLoadMore() {
		fmt.Fprintf(w, "Show more %s\n", state.RemainingLabel())
	} else {
		fmt.Fprintln(w, color.HiBlackString("Show more %s", state.RemainingLabel()))
	}
}

func printBookLine(w io.Writer, c *catalog.Catalogue, b catalog.Book) {
	genres := ""
	if names := c.GenreNames(b); len(names) > 0 {
		genres = " " + color.CyanString("["+strings.Join(names, ", ")+"]")
	}
	fmt.Fprintf(w, "  %-38s  %s %s%s\n",
		color.WhiteString(b.ID),
		b.Title,
		color.HiBlackString("· "+c.AuthorName(b)),
		genres,
	)
}
