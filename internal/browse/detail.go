package browse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
)

// ErrIndexOutOfRange is returned for a detail lookup outside the dataset.
var ErrIndexOutOfRange = errors.New("book index out of range")

// Detail is the content of the detail overlay.
type Detail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"` // "<author> (<year>)"
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Genres      []string `json:"genres"`
}

// Detail resolves the overlay content for the book at the given index of
// the original dataset. Filtered matches carry that index, so the lookup
// is the same whichever list is active.
func (s *State) Detail(index int) (Detail, error) {
	return NewDetail(s.catalogue, index)
}

// NewDetail builds the overlay content for c.Books[index].
func NewDetail(c *catalog.Catalogue, index int) (Detail, error) {
	if index < 0 || index >= len(c.Books) {
		return Detail{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.Books))
	}
	b := c.Books[index]
	return Detail{
		ID:          b.ID,
		Title:       b.Title,
		Subtitle:    subtitle(c.AuthorName(b), b.Published),
		Description: b.Description,
		Image:       b.Image,
		Genres:      c.GenreNames(b),
	}, nil
}

func subtitle(author string, published catalog.Date) string {
	if published.IsZero() {
		return author
	}
	return fmt.Sprintf("%s (%d)", author, published.Year())
}

// String renders the detail as plain text.
func (d Detail) String() string {
	var s strings.Builder
	s.WriteString(d.Title)
	s.WriteString("\n")
	s.WriteString(d.Subtitle)
	if len(d.Genres) > 0 {
		s.WriteString("\n")
		s.WriteString(strings.Join(d.Genres, " · "))
	}
	if d.Description != "" {
		s.WriteString("\n\n")
		s.WriteString(d.Description)
	}
	return s.String()
}
