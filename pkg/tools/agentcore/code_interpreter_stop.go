package agentcore

import (
	"context"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// CodeInterpreterStopTool stops the active code interpreter session.
type CodeInterpreterStopTool struct {
	spec *ToolSpec
}

// NewCodeInterpreterStopTool creates a new code interpreter stop tool.
func NewCodeInterpreterStopTool(spec *ToolSpec) *CodeInterpreterStopTool {
	return &CodeInterpreterStopTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *CodeInterpreterStopTool) Name() string {
	return "code_interpreter_stop"
}

// Description returns the tool description.
func (t *CodeInterpreterStopTool) Description() string {
	return "Stop the active code interpreter session and discard its state. Fails if no session is active."
}

// Schema returns the tool's JSON schema.
func (t *CodeInterpreterStopTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute stops the active interpreter session. The tool takes no arguments.
func (t *CodeInterpreterStopTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	result, err := t.spec.StopCodeInterpreter(ctx)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *CodeInterpreterStopTool) IsLoopBreaking() bool {
	return false
}
