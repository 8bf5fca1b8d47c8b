package agentcore

import (
	"context"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserStopTool stops the active browser sandbox session.
type BrowserStopTool struct {
	spec *ToolSpec
}

// NewBrowserStopTool creates a new browser stop tool.
func NewBrowserStopTool(spec *ToolSpec) *BrowserStopTool {
	return &BrowserStopTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserStopTool) Name() string {
	return "browser_stop"
}

// Description returns the tool description.
func (t *BrowserStopTool) Description() string {
	return "Stop the active browser sandbox session and release its remote resources. Fails if no session is active."
}

// Schema returns the tool's JSON schema.
func (t *BrowserStopTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute stops the active browser session. The tool takes no arguments.
func (t *BrowserStopTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	result, err := t.spec.StopBrowser(ctx)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserStopTool) IsLoopBreaking() bool {
	return false
}
