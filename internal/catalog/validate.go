package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/schema.json
var schemaData []byte

// ValidateSchema checks the structure of a raw catalogue file against the
// embedded JSON schema.
func ValidateSchema(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing catalogue YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]error, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	return fmt.Errorf("catalogue does not match schema: %w", errors.Join(errs...))
}

// Validate checks the references inside a decoded catalogue: unique ids,
// non-empty titles, and author/genre keys that resolve.
func Validate(c *Catalogue) error {
	var errs []error
	seen := make(map[string]int, len(c.Books))

	for i, b := range c.Books {
		where := fmt.Sprintf("books[%d] (%s)", i, b.ID)
		if prev, dup := seen[b.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id, first used by books[%d]", where, prev))
		} else {
			seen[b.ID] = i
		}
		if b.Title == "" {
			errs = append(errs, fmt.Errorf("%s: empty title", where))
		}
		if _, ok := c.Authors[b.Author]; !ok {
			errs = append(errs, fmt.Errorf("%s: unknown author %q", where, b.Author))
		}
		if len(b.Genres) == 0 {
			errs = append(errs, fmt.Errorf("%s: no genres", where))
		}
		for _, g := range b.Genres {
			if _, ok := c.Genres[g]; !ok {
				errs = append(errs, fmt.Errorf("%s: unknown genre %q", where, g))
			}
		}
	}

	// "All" is the selector sentinel and cannot double as a key.
	if _, ok := c.Authors[AllOption]; ok {
		errs = append(errs, fmt.Errorf("authors: key %q is reserved", AllOption))
	}
	if _, ok := c.Genres[AllOption]; ok {
		errs = append(errs, fmt.Errorf("genres: key %q is reserved", AllOption))
	}

	return errors.Join(errs...)
}
