// tools.go implements the MCP tools that forward into the engine.
//
// Design: Tool results are returned as JSON for easy LLM parsing. A false
// verdict is a normal result, not a tool error; tool errors are reserved
// for malformed input and missing tables, mirroring the engine's
// propagation policy.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/wistopics/internal/centreid"
	"github.com/jpl-au/wistopics/internal/log"
)

// registerTools exposes the engine's operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("wis2_topic_validate",
			mcp.WithDescription("Validate a WIS2 topic hierarchy string against the reference tables"),
			mcp.WithString("topic", mcp.Required(), mcp.Description("Topic hierarchy, e.g. cache/a/wis2/ca-eccc-msc/data/core")),
			mcp.WithBoolean("strict", mcp.Description("Reject wildcards and require centre-id membership (default: true)")),
		),
		h.validateTopic,
	)

	s.AddTool(
		mcp.NewTool("wis2_topic_list",
			mcp.WithDescription("List the immediate children of a WIS2 topic hierarchy level. Use / for the root."),
			mcp.WithString("topic", mcp.Required(), mcp.Description("Topic hierarchy prefix, or / for the root")),
		),
		h.listChildren,
	)

	s.AddTool(
		mcp.NewTool("wis2_centre_id_validate",
			mcp.WithDescription("Validate a WIS2 centre-id (tld-centrename) against the TLD registry and the allocated centre-ids"),
			mcp.WithString("centre_id", mcp.Required(), mcp.Description("Candidate centre-id, e.g. ca-eccc-msc")),
		),
		h.validateCentreID,
	)
}

// requireTables returns an error result if the tables are not loaded.
func (h *handlers) requireTables() *mcp.CallToolResult {
	if h.hierarchy == nil {
		return mcp.NewToolResultError(msgNotSynced)
	}
	return nil
}

// validateTopic handles wis2_topic_validate tool calls.
func (h *handlers) validateTopic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireTables(); res != nil {
		return res, nil
	}

	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic is required"), nil //nolint:nilerr
	}
	strict := getBool(req, "strict", true)

	valid, err := h.hierarchy.Validate(topic, strict)

	log.Event("mcp:validate", "validate").Topic(topic).Detail("strict", strict).Detail("valid", valid).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"topic":  topic,
		"strict": strict,
		"valid":  valid,
	})
}

// listChildren handles wis2_topic_list tool calls.
func (h *handlers) listChildren(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireTables(); res != nil {
		return res, nil
	}

	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic is required"), nil //nolint:nilerr
	}

	children, err := h.hierarchy.ListChildren(topic)

	log.Event("mcp:list", "list").Topic(topic).Detail("count", len(children)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"topic":    topic,
		"children": children,
	})
}

// validateCentreID handles wis2_centre_id_validate tool calls.
func (h *handlers) validateCentreID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireTables(); res != nil {
		return res, nil
	}

	id, err := req.RequireString("centre_id")
	if err != nil {
		return mcp.NewToolResultError("centre_id is required"), nil //nolint:nilerr
	}

	cid, err := centreid.New(id)
	if err != nil {
		log.Event("mcp:centre-id", "validate").Topic(id).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	tlds, err := h.store.LoadTLDs()
	if err != nil {
		log.Event("mcp:centre-id", "validate").Topic(id).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	valid := cid.Validate(tlds, h.hierarchy.Tables())

	log.Event("mcp:centre-id", "validate").Topic(id).Detail("valid", valid).Write(nil)

	return jsonResult(map[string]any{
		"centre_id": id,
		"valid":     valid,
	})
}

// getBool extracts a boolean parameter from the MCP request arguments.
// JSON booleans decode as Go bool values, so a type assertion suffices.
// Returns the default if the parameter is missing or not a boolean.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// jsonResult serialises a value as indented JSON and wraps it in an MCP
// text result. Errors during marshalling are converted to MCP error
// results rather than propagating as Go errors, keeping all failures on
// MCP's error result mechanism.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
