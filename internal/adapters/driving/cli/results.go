package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

var (
	resultsReference string
	resultsRejected  bool
	resultsLimit     int
	resultsJSON      bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [ID]",
	Short: "Show recorded import results",
	Long: `Lists import results recorded with --store, newest first, or shows a
single result by ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsReference, "reference", "", "only results for this document reference")
	resultsCmd.Flags().BoolVar(&resultsRejected, "rejected", false, "only rejected documents")
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "n", 20, "maximum number of results (0 = all)")
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	svc, err := resolveResultService()
	if err != nil {
		return err
	}

	var results []*domain.ImportResult
	if len(args) == 1 {
		r, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		results = []*domain.ImportResult{r}
	} else {
		results, err = svc.List(cmd.Context(), domain.ResultQuery{
			Reference:    resultsReference,
			RejectedOnly: resultsRejected,
			Limit:        resultsLimit,
		})
		if err != nil {
			return err
		}
	}

	if resultsJSON {
		return writeJSON(cmd, results, false)
	}
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for _, r := range results {
		cmd.Printf("%s  %s  ", r.ImportedAt.Local().Format("2006-01-02 15:04:05"), r.ID)
		printResult(cmd, r)
	}
	return nil
}
