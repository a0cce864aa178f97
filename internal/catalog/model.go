package catalog

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AllOption is the selector value that disables the genre or author predicate.
const AllOption = "All"

// Book is one record in the catalogue.
type Book struct {
	ID          string   `yaml:"id" json:"id"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Author      string   `yaml:"author" json:"author"`
	Genres      []string `yaml:"genres" json:"genres"`
	Published   Date     `yaml:"published" json:"published"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalogue is the static dataset: books plus the author and genre
// key→label mappings the books refer to.
type Catalogue struct {
	Books   []Book            `yaml:"books"`
	Authors map[string]string `yaml:"authors"`
	Genres  map[string]string `yaml:"genres"`
}

// AuthorName resolves the book's author key against the authors mapping.
func (c *Catalogue) AuthorName(b Book) string {
	if name, ok := c.Authors[b.Author]; ok {
		return name
	}
	return "Unknown author"
}

// GenreNames returns the labels of the book's genres, skipping unknown keys.
func (c *Catalogue) GenreNames(b Book) []string {
	out := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		if label, ok := c.Genres[g]; ok {
			out = append(out, label)
		}
	}
	return out
}

// Date is a publication date. It accepts full RFC 3339 timestamps as well
// as bare YYYY-MM-DD dates.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006",
}

// ParseDate parses s using the accepted layouts.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Value == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(time.RFC3339), nil
}
