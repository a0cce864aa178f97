package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter holds the search form criteria. Genre and Author use AllOption
// (or the empty string) to match everything; an empty Title matches every
// title.
type Filter struct {
	Genre  string `json:"genre"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

// Match pairs a book with its index in the original dataset.
type Match struct {
	Book  Book
	Index int
}

// Normalize maps empty selector values to AllOption.
func (f Filter) Normalize() Filter {
	if f.Genre == "" {
		f.Genre = AllOption
	}
	if f.Author == "" {
		f.Author = AllOption
	}
	return f
}

// IsZero reports whether the filter matches every book.
func (f Filter) IsZero() bool {
	f = f.Normalize()
	return f.Genre == AllOption && f.Author == AllOption && f.Title == ""
}

// Apply returns the books matching all three predicates, in dataset order.
func (f Filter) Apply(books []Book) []Match {
	f = f.Normalize()
	needle := fold(f.Title)

	out := make([]Match, 0, len(books))
	for i, b := range books {
		if f.Genre != AllOption && !hasGenre(b, f.Genre) {
			continue
		}
		if f.Author != AllOption && b.Author != f.Author {
			continue
		}
		if needle != "" && !strings.Contains(fold(b.Title), needle) {
			continue
		}
		out = append(out, Match{Book: b, Index: i})
	}
	return out
}

// Matches reports whether a single book satisfies the filter.
func (f Filter) Matches(b Book) bool {
	return len(f.Apply([]Book{b})) == 1
}

// All wraps every book as a match at its own index.
func All(books []Book) []Match {
	out := make([]Match, len(books))
	for i, b := range books {
		out[i] = Match{Book: b, Index: i}
	}
	return out
}

func hasGenre(b Book, genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// fold case-folds s for caseless substring comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}
