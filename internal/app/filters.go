package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/spf13/cobra"
)

// filterFlags are the search criteria shared by browse, list and export.
type filterFlags struct {
	genre  string
	author string
	title  string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.genre, "genre", "", "Filter by genre (key or name)")
	cmd.Flags().StringVar(&ff.author, "author", "", "Filter by author (key or name)")
	cmd.Flags().StringVar(&ff.title, "title", "", "Filter by title substring (case-insensitive)")
}

// filter resolves the flags against c. Genres and authors may be given by
// key or by display name.
func (ff filterFlags) filter(c *catalog.Catalogue) (catalog.Filter, error) {
	genre, err := resolveOption("genre", c.GenreOptions(), ff.genre)
	if err != nil {
		return catalog.Filter{}, err
	}
	author, err := resolveOption("author", c.AuthorOptions(), ff.author)
	if err != nil {
		return catalog.Filter{}, err
	}
	return catalog.Filter{
		Genre:  genre,
		Author: author,
		Title:  strings.TrimSpace(ff.title),
	}, nil
}

func resolveOption(kind string, opts []catalog.Option, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, catalog.AllOption) {
		return catalog.AllOption, nil
	}
	for _, o := range opts {
		if o.Value == value {
			return o.Value, nil
		}
	}
	for _, o := range opts {
		if strings.EqualFold(o.Label, value) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q (see 'bookconnect %ss')", kind, value, kind)
}
