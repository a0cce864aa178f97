package app

import (
	"fmt"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/blackwell-systems/bookconnect/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		ff    filterFlags
		out   string
		theme string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalogue grid as a standalone HTML page",
		Long: `Write the (optionally filtered) catalogue as an HTML page of previews.

Examples:
  bookconnect export --out index.html
  bookconnect export --genre mystery --theme night --out mystery.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if theme == "" {
				theme = cfg.Display.Theme
			}
			if !config.ValidTheme(theme) {
				return fmt.Errorf("unknown theme %q (use %s or %s)", theme, config.ThemeDay, config.ThemeNight)
			}

			f, err := ff.filter(cat)
			if err != nil {
				return err
			}
			matches := catalog.All(cat.Books)
			if !f.IsZero() {
				matches = f.Apply(cat.Books)
			}

			if err := export.WriteFile(out, cat, matches, theme); err != nil {
				return err
			}
			ok("Wrote %d books to %s", len(matches), out)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "Output file")
	cmd.Flags().StringVar(&theme, "theme", "", "Page theme: day or night (default: display.theme)")
	return cmd
}
