package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wistopics/internal/bundle"
	"github.com/jpl-au/wistopics/internal/topics"
)

func emptyStore() *bundle.Store {
	return bundle.NewStore(bundle.Options{Fs: afero.NewMemMapFs(), Dir: "/empty"})
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestTools_Unsynced(t *testing.T) {
	h := &handlers{store: emptyStore()}

	res, err := h.validateTopic(context.Background(), callRequest(map[string]any{"topic": "cache/a/wis2"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "bundle sync")
}

func TestValidateCentreID_TLDsUnavailable(t *testing.T) {
	tables, err := topics.NewTables(make([][]string, topics.NumLevels))
	require.NoError(t, err)

	// Tables loaded but no TLD registry on disk: the tool must surface
	// the load failure as an error result rather than a verdict.
	h := &handlers{store: emptyStore(), hierarchy: topics.New(tables)}

	res, err := h.validateCentreID(context.Background(), callRequest(map[string]any{"centre_id": "ca-new-centre"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not synced")
}
