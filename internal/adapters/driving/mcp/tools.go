package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// ImportInput is the input schema for the import_document tool.
type ImportInput struct {
	Reference       string              `json:"reference" jsonschema:"document reference such as a path or URL"`
	Content         string              `json:"content" jsonschema:"document content"`
	Base64          bool                `json:"base64,omitempty" jsonschema:"content is base64 encoded binary"`
	ContentType     string              `json:"content_type,omitempty" jsonschema:"MIME type of the content"`
	ContentEncoding string              `json:"content_encoding,omitempty" jsonschema:"character encoding of the content"`
	Parsed          bool                `json:"parsed,omitempty" jsonschema:"content is already extracted UTF-8 text"`
	Metadata        map[string][]string `json:"metadata,omitempty" jsonschema:"metadata known before import"`
}

// ImportOutput is the output schema for the import_document tool.
type ImportOutput struct {
	ID         string              `json:"id"`
	Reference  string              `json:"reference"`
	Accepted   bool                `json:"accepted"`
	RejectedBy string              `json:"rejected_by,omitempty"`
	Metadata   map[string][]string `json:"metadata"`
	Content    string              `json:"content,omitempty"`
}

// ListResultsInput is the input schema for the list_results tool.
type ListResultsInput struct {
	Reference    string `json:"reference,omitempty" jsonschema:"only results for this document reference"`
	RejectedOnly bool   `json:"rejected_only,omitempty" jsonschema:"only rejected documents"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
}

// ListResultsOutput is the output schema for the list_results tool.
type ListResultsOutput struct {
	Results []ImportOutput `json:"results"`
}

// GetResultInput is the input schema for the get_result tool.
type GetResultInput struct {
	ID string `json:"id" jsonschema:"import result ID"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_document",
		Description: "Run a document through the configured filters, taggers and transformers",
	}, s.handleImport)

	if s.ports.Results != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_results",
			Description: "List recorded import results, newest first",
		}, s.handleListResults)
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_result",
			Description: "Get a recorded import result by ID",
		}, s.handleGetResult)
	}
}

func (s *Server) handleImport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	if input.Reference == "" {
		return nil, ImportOutput{}, fmt.Errorf("%w: reference is required", domain.ErrInvalidInput)
	}

	content := []byte(input.Content)
	if input.Base64 {
		decoded, err := base64.StdEncoding.DecodeString(input.Content)
		if err != nil {
			return nil, ImportOutput{}, fmt.Errorf("%w: decoding content: %w", domain.ErrInvalidInput, err)
		}
		content = decoded
	}

	raw := &domain.RawDocument{
		Reference:       input.Reference,
		Content:         content,
		ContentType:     input.ContentType,
		ContentEncoding: input.ContentEncoding,
		Metadata:        domain.MetadataFrom(input.Metadata),
	}
	if input.Parsed {
		raw.ParseState = domain.ParsePost
	}

	result, err := s.ports.Import.Import(ctx, raw)
	if err != nil {
		return nil, ImportOutput{}, err
	}
	return nil, toOutput(result), nil
}

func toOutput(result *domain.ImportResult) ImportOutput {
	out := ImportOutput{
		ID:         result.ID,
		Reference:  result.Reference,
		Accepted:   result.Accepted,
		RejectedBy: result.RejectedBy,
		Metadata:   map[string][]string{},
		Content:    string(result.Content),
	}
	if result.Metadata != nil {
		out.Metadata = result.Metadata.Map()
	}
	return out
}

func (s *Server) handleListResults(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListResultsInput,
) (*mcp.CallToolResult, ListResultsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	results, err := s.ports.Results.List(ctx, domain.ResultQuery{
		Reference:    input.Reference,
		RejectedOnly: input.RejectedOnly,
		Limit:        limit,
	})
	if err != nil {
		return nil, ListResultsOutput{}, err
	}

	out := ListResultsOutput{Results: make([]ImportOutput, 0, len(results))}
	for _, r := range results {
		o := toOutput(r)
		o.Content = ""
		out.Results = append(out.Results, o)
	}
	return nil, out, nil
}

func (s *Server) handleGetResult(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetResultInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	result, err := s.ports.Results.Get(ctx, input.ID)
	if err != nil {
		return nil, ImportOutput{}, err
	}
	return nil, toOutput(result), nil
}
