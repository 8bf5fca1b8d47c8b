package agentcore

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// BrowserStartTool starts a remote browser sandbox session.
type BrowserStartTool struct {
	spec *ToolSpec
}

// NewBrowserStartTool creates a new browser start tool.
func NewBrowserStartTool(spec *ToolSpec) *BrowserStartTool {
	return &BrowserStartTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *BrowserStartTool) Name() string {
	return "browser_start"
}

// Description returns the tool description.
func (t *BrowserStartTool) Description() string {
	return "Start a remote browser sandbox session for web automation. The session runs in the cloud, persists across agent loop iterations, and stays alive until stopped or until its timeout expires."
}

// Schema returns the tool's JSON schema.
func (t *BrowserStartTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"identifier": map[string]interface{}{
				"type":        "string",
				"description": "Browser sandbox identifier. Default: aws.browser.v1",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Optional name for the session (e.g., 'research', 'checkout-flow'). A name is generated when omitted.",
			},
			"session_timeout_seconds": map[string]interface{}{
				"type":        "integer",
				"description": "Seconds before the service reclaims an idle session. Default: 3600",
			},
		},
		nil,
	)
}

// BrowserStartInput defines the input parameters for starting a browser session.
type BrowserStartInput struct {
	XMLName               xml.Name `xml:"arguments"`
	Identifier            string   `xml:"identifier"`
	Name                  string   `xml:"name"`
	SessionTimeoutSeconds int      `xml:"session_timeout_seconds"`
}

// Execute starts a new browser sandbox session.
func (t *BrowserStartTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input BrowserStartInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	result, err := t.spec.StartBrowser(ctx, input.Identifier, input.Name, input.SessionTimeoutSeconds)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *BrowserStartTool) IsLoopBreaking() bool {
	return false
}
