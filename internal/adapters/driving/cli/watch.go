package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

var watchParsed bool

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Import files as they change",
	Long: `Watches a directory and runs every created or modified file through the
configured handler chain. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchParsed, "parsed", false, "treat content as already extracted UTF-8 text")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := resolveImportService()
	if err != nil {
		return err
	}

	src := filesystem.New(filesystem.LocalPath(args[0]))
	if watchParsed {
		src.WithParseState(domain.ParsePost)
	}
	defer src.Close()

	ctx := cmd.Context()
	changes, err := src.Watch(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Watching %s\n", src.Root())

	for change := range changes {
		if change.Type == domain.ChangeDeleted {
			logger.Info("%s %s", change.Type, change.Reference)
			continue
		}

		result, err := svc.Import(ctx, change.Document)
		if err != nil {
			if errors.Is(err, ctx.Err()) {
				return nil
			}
			cmd.PrintErrf("import %s: %v\n", change.Reference, err)
			continue
		}
		printResult(cmd, result)
	}
	return nil
}
