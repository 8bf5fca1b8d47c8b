package agentcore

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserViewTool returns a presigned live-view URL for the active session.
type BrowserViewTool struct {
	spec *ToolSpec
}

// NewBrowserViewTool creates a new browser view tool.
func NewBrowserViewTool(spec *ToolSpec) *BrowserViewTool {
	return &BrowserViewTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserViewTool) Name() string {
	return "browser_view"
}

// Description returns the tool description.
func (t *BrowserViewTool) Description() string {
	return "Generate a presigned URL for watching the active browser session live. The URL expires after the given number of seconds."
}

// Schema returns the tool's JSON schema.
func (t *BrowserViewTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"expires": map[string]interface{}{
				"type":        "integer",
				"description": "URL expiry in seconds. Default: 300",
			},
		},
		nil,
	)
}

// BrowserViewInput defines the input parameters for the live view URL.
type BrowserViewInput struct {
	XMLName xml.Name `xml:"arguments"`
	Expires int      `xml:"expires"`
}

// Execute generates a live view URL for the active browser session.
func (t *BrowserViewTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input BrowserViewInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	result, err := t.spec.GenerateLiveViewURL(ctx, input.Expires)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserViewTool) IsLoopBreaking() bool {
	return false
}
