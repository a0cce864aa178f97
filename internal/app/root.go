package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/blackwell-systems/bookconnect/internal/tui"
	"github.com/blackwell-systems/bookconnect/internal/util"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	cat *catalog.Catalogue
	log = logrus.WithField("component", "app")

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagCatalog       string
	flagDebug         bool
	flagLogFile       string
)

// Commands annotated with skipCatalogue run without the dataset loaded.
const skipCatalogue = "skip-catalogue"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookconnect",
		Short: "Browse a book catalogue in the terminal",
		Long: `bookconnect renders a paginated grid of book previews with genre, author
and title filters, a detail view, and a day/night theme.

The built-in catalogue is used unless catalog.path or --catalog points at
a YAML file.

Run 'bookconnect' with no arguments to launch the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runBrowser(catalog.Filter{})
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookconnect/config.yml)")
	pf.StringVar(&flagCatalog, "catalog", "", "Catalogue YAML file (default: built-in catalogue)")
	pf.BoolVar(&flagDebug, "debug", false, "Write debug logs to stderr (debug.log next to the config while browsing), or to --log-file")
	pf.StringVar(&flagLogFile, "log-file", "", "Append diagnostic logs to this file")

	root.PersistentPreRunE = prepare

	root.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newShowCmd(),
		newGenresCmd(),
		newAuthorsCmd(),
		newExportCmd(),
		newValidateCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// SetVersion records the build version reported by `bookconnect version`.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

// Execute is the entry point called from main.
func Execute() {
	err := newRootCmd().Execute()
	closeLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// prepare loads the config, sets up logging and loads the catalogue
// before any command runs.
func prepare(cmd *cobra.Command, args []string) error {
	util.InitColor(flagNoColor)

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagCatalog != "" {
		cfg.Catalog.Path = util.ExpandHome(flagCatalog)
	}
	if flagLogFile != "" {
		cfg.Log.File = util.ExpandHome(flagLogFile)
	}
	if err := setupLogging(cfg.Log, flagDebug); err != nil {
		return err
	}

	if _, skip := cmd.Annotations[skipCatalogue]; skip {
		return nil
	}
	cat, err = loadCatalogue(cfg.Catalog.Path)
	return err
}

// loadCatalogue reads the dataset at path (embedded when empty). Broken
// references are reported but do not stop browsing; unknown authors render
// as "Unknown author".
func loadCatalogue(path string) (*catalog.Catalogue, error) {
	c, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalogue %s not found (check catalog.path or --catalog)", path)
		}
		return nil, err
	}

	if err := catalog.Validate(c); err != nil {
		warn("Catalogue has problems (run 'bookconnect validate' for details)")
		log.WithError(err).Warn("catalogue validation failed")
	}
	log.WithFields(logrus.Fields{
		"path":    path,
		"books":   len(c.Books),
		"authors": len(c.Authors),
		"genres":  len(c.Genres),
	}).Debug("catalogue loaded")
	return c, nil
}

// runBrowser opens the interactive grid, optionally with a search already
// applied.
func runBrowser(f catalog.Filter) error {
	state := browse.New(cat, cfg.Display.PageSize)
	if !f.IsZero() {
		state.Submit(f)
	}

	if err := redirectLogsForTUI(tuiLogPath()); err != nil {
		return err
	}
	theme, err := tui.RunBrowser(state, cfg.Display.Theme)
	if err != nil {
		return err
	}
	log.WithField("theme", theme).Debug("browser closed")
	return nil
}
