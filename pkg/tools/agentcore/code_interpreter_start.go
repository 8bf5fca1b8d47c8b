package agentcore

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// CodeInterpreterStartTool starts a remote code interpreter session.
type CodeInterpreterStartTool struct {
	spec *ToolSpec
}

// NewCodeInterpreterStartTool creates a new code interpreter start tool.
func NewCodeInterpreterStartTool(spec *ToolSpec) *CodeInterpreterStartTool {
	return &CodeInterpreterStartTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *CodeInterpreterStartTool) Name() string {
	return "code_interpreter_start"
}

// Description returns the tool description.
func (t *CodeInterpreterStartTool) Description() string {
	return "Start a remote code interpreter session for executing code in an isolated sandbox. The session keeps state between executions until stopped."
}

// Schema returns the tool's JSON schema.
func (t *CodeInterpreterStartTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"identifier": map[string]interface{}{
				"type":        "string",
				"description": "Code interpreter sandbox identifier. Default: aws.codeinterpreter.v1",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Optional name for the session. A name is generated when omitted.",
			},
			"session_timeout_seconds": map[string]interface{}{
				"type":        "integer",
				"description": "Seconds before the service reclaims an idle session. Default: 900",
			},
		},
		nil,
	)
}

// CodeInterpreterStartInput defines the input parameters for starting an
// interpreter session.
type CodeInterpreterStartInput struct {
	XMLName               xml.Name `xml:"arguments"`
	Identifier            string   `xml:"identifier"`
	Name                  string   `xml:"name"`
	SessionTimeoutSeconds int      `xml:"session_timeout_seconds"`
}

// Execute starts a new code interpreter session.
func (t *CodeInterpreterStartTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input CodeInterpreterStartInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	result, err := t.spec.StartCodeInterpreter(ctx, input.Identifier, input.Name, input.SessionTimeoutSeconds)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *CodeInterpreterStartTool) IsLoopBreaking() bool {
	return false
}
