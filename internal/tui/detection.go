package tui

import (
	"github.com/blackwell-systems/bookconnect/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should open the interactive browser.
// TUI mode is enabled when:
// - stdin and stdout are terminals
// - --no-interactive is not set
// - --json is not set (indicates scripting intent)
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsInteractive() {
		return false
	}

	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return false
	}

	return true
}
