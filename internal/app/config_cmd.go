package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/spf13/cobra"
)

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	if p := os.Getenv("BOOKCONNECT_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath()
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration",
	}

	show := &cobra.Command{
		Use:         "show",
		Short:       "Print the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipCatalogue: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			header(w, "Config: %s", configPath())
			catalogPath := cfg.Catalog.Path
			if catalogPath == "" {
				catalogPath = "(built-in)"
			}
			printField(w, "catalog.path", catalogPath)
			printField(w, "page_size", fmt.Sprintf("%d", cfg.Display.PageSize))
			printField(w, "theme", cfg.Display.Theme)
			logPath := cfg.Log.File
			if logPath == "" {
				logPath = "(none)"
			}
			printField(w, "log.file", logPath)
			printField(w, "log.level", cfg.Log.Level)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the effective configuration to the config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipCatalogue: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			ok("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(show, initCmd)
	return cmd
}
