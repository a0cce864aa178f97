package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the bookconnect version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipCatalogue: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookconnect %s\n", appVersion)
		},
	}
}
