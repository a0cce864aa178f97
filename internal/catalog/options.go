package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option is one entry of a search form selector.
type Option struct {
	Value string
	Label string
}

// GenreOptions returns the genre selector entries: "All genres" first,
// then every genre ordered by label.
func (c *Catalogue) GenreOptions() []Option {
	return options("All genres", c.Genres)
}

// AuthorOptions returns the author selector entries: "All authors" first,
// then every author ordered by label.
func (c *Catalogue) AuthorOptions() []Option {
	return options("All authors", c.Authors)
}

func options(allLabel string, m map[string]string) []Option {
	opts := make([]Option, 0, len(m))
	for k, v := range m {
		opts = append(opts, Option{Value: k, Label: v})
	}
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(opts, func(i, j int) bool {
		if c := col.CompareString(opts[i].Label, opts[j].Label); c != 0 {
			return c < 0
		}
		return opts[i].Value < opts[j].Value
	})
	return append([]Option{{Value: AllOption, Label: allLabel}}, opts...)
}

// OptionIndex returns the position of value in opts, or 0 (the "All"
// entry) when it is absent.
func OptionIndex(opts []Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return 0
}
