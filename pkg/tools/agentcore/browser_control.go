package agentcore

import (
	"context"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserControlTool takes manual control of the active browser session.
type BrowserControlTool struct {
	spec *ToolSpec
}

// NewBrowserControlTool creates a new browser control tool.
func NewBrowserControlTool(spec *ToolSpec) *BrowserControlTool {
	return &BrowserControlTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserControlTool) Name() string {
	return "browser_control"
}

// Description returns the tool description.
func (t *BrowserControlTool) Description() string {
	return "Take manual control of the active browser session. Pauses the automation stream so a human can drive the browser through the live view."
}

// Schema returns the tool's JSON schema.
func (t *BrowserControlTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute takes control of the active browser session. The tool takes no arguments.
func (t *BrowserControlTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	result, err := t.spec.TakeControl(ctx)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserControlTool) IsLoopBreaking() bool {
	return false
}
