package agentcore

import (
	"context"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserWSHeadersTool returns the WebSocket endpoint and signed headers
// for connecting an automation driver to the active browser session.
type BrowserWSHeadersTool struct {
	spec *ToolSpec
}

// NewBrowserWSHeadersTool creates a new ws-headers tool.
func NewBrowserWSHeadersTool(spec *ToolSpec) *BrowserWSHeadersTool {
	return &BrowserWSHeadersTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserWSHeadersTool) Name() string {
	return "browser_ws_headers"
}

// Description returns the tool description.
func (t *BrowserWSHeadersTool) Description() string {
	return "Get the WebSocket URL and signed connection headers for the active browser session. Pass both to a CDP client (e.g., Playwright) to drive the remote browser."
}

// Schema returns the tool's JSON schema.
func (t *BrowserWSHeadersTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute fetches the WebSocket connection details. The tool takes no arguments.
func (t *BrowserWSHeadersTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	result, err := t.spec.GenerateWSHeaders(ctx)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserWSHeadersTool) IsLoopBreaking() bool {
	return false
}
