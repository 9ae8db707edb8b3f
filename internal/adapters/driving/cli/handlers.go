package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/handlers"
)

var handlersChain bool

var handlersCmd = &cobra.Command{
	Use:   "handlers",
	Short: "List handler types or the configured chain",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !handlersChain {
			for _, t := range handlers.DefaultRegistry().Types() {
				cmd.Println(t)
			}
			return nil
		}

		svc, err := resolveImportService()
		if err != nil {
			return err
		}
		for i, name := range svc.Handlers() {
			cmd.Printf("%d. %s\n", i+1, name)
		}
		return nil
	},
}

func init() {
	handlersCmd.Flags().BoolVar(&handlersChain, "chain", false, "list the handlers configured with --config")
	rootCmd.AddCommand(handlersCmd)
}
