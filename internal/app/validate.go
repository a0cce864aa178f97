package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalogue file for structural and reference errors",
		Long: `Check a catalogue file against the catalogue schema, then check that ids are
unique and every author and genre reference resolves.

With no file, the configured catalogue (or the built-in one) is checked.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipCatalogue: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Catalog.Path
			if len(args) == 1 {
				path = args[0]
			}

			name, data, err := readCatalogue(path)
			if err != nil {
				return err
			}

			problems := validateData(data)
			if problems == nil {
				ok("%s is valid", name)
				return nil
			}

			w := cmd.ErrOrStderr()
			n := 0
			for _, p := range unjoin(problems) {
				fmt.Fprintln(w, color.RedString("✗"), p)
				n++
			}
			return fmt.Errorf("%s: %d problem(s) found", name, n)
		},
	}
}

func readCatalogue(path string) (string, []byte, error) {
	if path == "" {
		return "built-in catalogue", catalog.DefaultData(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return path, data, nil
}

// validateData runs the schema check and, when the structure is sound,
// the reference checks.
func validateData(data []byte) error {
	if err := catalog.ValidateSchema(data); err != nil {
		return err
	}
	c, err := catalog.Parse(data)
	if err != nil {
		return err
	}
	return catalog.Validate(c)
}

// unjoin flattens errors.Join trees into their leaves.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, unjoin(e)...)
		}
		return out
	}
	if inner := errors.Unwrap(err); inner != nil {
		if _, ok := inner.(interface{ Unwrap() []error }); ok {
			return unjoin(inner)
		}
	}
	return []error{err}
}
