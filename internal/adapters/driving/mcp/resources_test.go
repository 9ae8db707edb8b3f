package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_handleHandlersResource(t *testing.T) {
	ctx := context.Background()
	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "importer://handlers"}}

	t.Run("lists handlers in order", func(t *testing.T) {
		svc := &mockImportService{handlers: []string{"MetadataFilter", "titles"}}
		server, err := NewServer(&Ports{Import: svc})
		require.NoError(t, err)

		res, err := server.handleHandlersResource(ctx, req)
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "importer://handlers", res.Contents[0].URI)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)
		assert.JSONEq(t, `["MetadataFilter","titles"]`, res.Contents[0].Text)
	})

	t.Run("empty chain", func(t *testing.T) {
		server, err := NewServer(&Ports{Import: &mockImportService{}})
		require.NoError(t, err)

		res, err := server.handleHandlersResource(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "[]", res.Contents[0].Text)
	})
}
