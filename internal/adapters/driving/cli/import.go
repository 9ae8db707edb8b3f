package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-importer/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

var (
	importParsed      bool
	importContentType string
	importEncoding    string
	importJSON        bool
	importContent     bool
)

var importCmd = &cobra.Command{
	Use:   "import PATH...",
	Short: "Import files through the handler chain",
	Long: `Runs each file through the configured handler chain and prints the
resulting metadata. Directories are walked recursively; hidden files are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importParsed, "parsed", false, "treat content as already extracted UTF-8 text")
	importCmd.Flags().StringVar(&importContentType, "content-type", "", "override the detected content type")
	importCmd.Flags().StringVar(&importEncoding, "encoding", "", "declare the content character encoding")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output results as JSON")
	importCmd.Flags().BoolVar(&importContent, "content", false, "include transformed content in JSON output")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	svc, err := resolveImportService()
	if err != nil {
		return err
	}

	docs, err := loadDocuments(cmd, args)
	if err != nil {
		return err
	}

	results, importErr := svc.ImportAll(cmd.Context(), docs)

	if importJSON {
		if err := writeJSON(cmd, results, importContent); err != nil {
			return err
		}
	} else {
		outputImportText(cmd, results)
	}

	if importErr != nil {
		return fmt.Errorf("import failed: %w", importErr)
	}
	return nil
}

func loadDocuments(cmd *cobra.Command, paths []string) ([]*domain.RawDocument, error) {
	state := domain.ParsePre
	if importParsed {
		state = domain.ParsePost
	}

	var docs []*domain.RawDocument
	for _, p := range paths {
		local := filesystem.LocalPath(p)
		info, err := os.Stat(local)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}

		var loaded []*domain.RawDocument
		if info.IsDir() {
			loaded, err = filesystem.New(local).WithParseState(state).List(cmd.Context())
		} else {
			var doc *domain.RawDocument
			doc, err = filesystem.New("").WithParseState(state).Read(cmd.Context(), local)
			loaded = []*domain.RawDocument{doc}
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}

	for _, d := range docs {
		applyOverrides(d)
	}
	return docs, nil
}

func applyOverrides(doc *domain.RawDocument) {
	if importContentType != "" {
		doc.ContentType = importContentType
	}
	if importEncoding != "" {
		doc.ContentEncoding = importEncoding
	}
}

// resultOutput is the JSON form of an import result.
type resultOutput struct {
	ID         string              `json:"id"`
	Reference  string              `json:"reference"`
	Accepted   bool                `json:"accepted"`
	RejectedBy string              `json:"rejectedBy,omitempty"`
	Metadata   map[string][]string `json:"metadata"`
	Content    string              `json:"content,omitempty"`
	ImportedAt time.Time           `json:"importedAt"`
}

func toResultOutput(r *domain.ImportResult, withContent bool) resultOutput {
	out := resultOutput{
		ID:         r.ID,
		Reference:  r.Reference,
		Accepted:   r.Accepted,
		RejectedBy: r.RejectedBy,
		Metadata:   map[string][]string{},
		ImportedAt: r.ImportedAt,
	}
	if r.Metadata != nil {
		out.Metadata = r.Metadata.Map()
	}
	if withContent {
		out.Content = string(r.Content)
	}
	return out
}

func writeJSON(cmd *cobra.Command, results []*domain.ImportResult, withContent bool) error {
	outputs := make([]resultOutput, 0, len(results))
	for _, r := range results {
		if r != nil {
			outputs = append(outputs, toResultOutput(r, withContent))
		}
	}

	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputImportText(cmd *cobra.Command, results []*domain.ImportResult) {
	for _, r := range results {
		if r != nil {
			printResult(cmd, r)
		}
	}
}

func printResult(cmd *cobra.Command, r *domain.ImportResult) {
	if !r.Accepted {
		cmd.Printf("REJECTED %s (by %s)\n", r.Reference, r.RejectedBy)
		return
	}
	cmd.Printf("ACCEPTED %s\n", r.Reference)
	if r.Metadata == nil {
		return
	}

	for _, f := range r.Metadata.Fields() {
		cmd.Printf("  %s: %s\n", f, strings.Join(r.Metadata.GetAll(f), " | "))
	}
}
