package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"info"},
		Short:   "Show the details of one book",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := catalog.ByID(cat.Books, args[0])
			if err != nil {
				return err
			}
			d, err := browse.NewDetail(cat, idx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding JSON: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}

			header(w, "Book: %s", d.ID)
			printField(w, "title", d.Title)
			printField(w, "by", d.Subtitle)
			if len(d.Genres) > 0 {
				printField(w, "genres", strings.Join(d.Genres, ", "))
			}
			if d.Image != "" {
				printField(w, "image", d.Image)
			}
			if d.Description != "" {
				fmt.Fprintln(w)
				fmt.Fprintln(w, d.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
