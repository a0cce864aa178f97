package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalogue.yml
var defaultData []byte

// ErrNotFound is returned when a book lookup fails.
var ErrNotFound = errors.New("book not found")

// Load reads a catalogue file from disk. An empty path loads the embedded
// dataset.
func Load(path string) (*Catalogue, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	return Parse(data)
}

// LoadDefault returns the catalogue compiled into the binary.
func LoadDefault() (*Catalogue, error) {
	return Parse(defaultData)
}

// DefaultData returns the raw bytes of the embedded catalogue.
func DefaultData() []byte {
	return defaultData
}

// Parse decodes catalogue YAML. Books without an id are assigned a random
// UUID so detail lookups stay unambiguous.
func Parse(data []byte) (*Catalogue, error) {
	c := &Catalogue{}
	if len(data) == 0 {
		return normalize(c), nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing catalogue YAML: %w", err)
	}
	return normalize(c), nil
}

func normalize(c *Catalogue) *Catalogue {
	if c.Books == nil {
		c.Books = []Book{}
	}
	if c.Authors == nil {
		c.Authors = map[string]string{}
	}
	if c.Genres == nil {
		c.Genres = map[string]string{}
	}
	for i := range c.Books {
		if c.Books[i].ID == "" {
			c.Books[i].ID = uuid.NewString()
		}
	}
	return c
}

// ByID returns the index and a pointer to the first book with the given id.
func ByID(books []Book, id string) (int, *Book, error) {
	for i := range books {
		if books[i].ID == id {
			return i, &books[i], nil
		}
	}
	return -1, nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}
