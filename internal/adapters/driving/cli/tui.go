package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/adapters/driving/tui"
)

var tuiLimit int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse recorded import results interactively",
	Long: `Opens a terminal browser over the results recorded with --store.

Controls:
  ↑/k, ↓/j  Move through results
  Enter     Show metadata and content of a result
  /         Filter by document reference
  r         Toggle rejected documents only
  h         Show the configured handler chain
  Esc       Back
  q         Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// runProgram runs the bubbletea program. Tests replace it.
var runProgram = func(ctx context.Context, model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func init() {
	tuiCmd.Flags().IntVarP(&tuiLimit, "limit", "n", tui.DefaultLimit, "maximum number of results loaded (0 = all)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	results, err := resolveResultService()
	if err != nil {
		return err
	}
	ports := &tui.Ports{Results: results}

	// The handler view is optional; a broken chain config still lets the
	// recorded results be browsed.
	if svc, err := resolveImportService(); err == nil {
		ports.Import = svc
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context()).WithLimit(tuiLimit)

	if err := runProgram(cmd.Context(), app); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
