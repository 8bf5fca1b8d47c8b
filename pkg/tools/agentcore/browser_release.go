package agentcore

import (
	"context"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserReleaseTool returns control of the browser session to automation.
type BrowserReleaseTool struct {
	spec *ToolSpec
}

// NewBrowserReleaseTool creates a new browser release tool.
func NewBrowserReleaseTool(spec *ToolSpec) *BrowserReleaseTool {
	return &BrowserReleaseTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserReleaseTool) Name() string {
	return "browser_release"
}

// Description returns the tool description.
func (t *BrowserReleaseTool) Description() string {
	return "Release manual control of the active browser session and resume the automation stream."
}

// Schema returns the tool's JSON schema.
func (t *BrowserReleaseTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute releases control of the active browser session. The tool takes no arguments.
func (t *BrowserReleaseTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	result, err := t.spec.ReleaseControl(ctx)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserReleaseTool) IsLoopBreaking() bool {
	return false
}
