package agentcore

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/agentcore/pkg/agent/tools"
)

// CodeInterpreterExecuteTool invokes a method on the active interpreter
// session, most commonly executing a snippet of code.
type CodeInterpreterExecuteTool struct {
	spec *ToolSpec
}

// NewCodeInterpreterExecuteTool creates a new code interpreter execute tool.
func NewCodeInterpreterExecuteTool(spec *ToolSpec) *CodeInterpreterExecuteTool {
	return &CodeInterpreterExecuteTool{
		spec: spec,
	}
}

// Name returns the tool name.
func (t *CodeInterpreterExecuteTool) Name() string {
	return "code_interpreter_execute"
}

// Description returns the tool description.
func (t *CodeInterpreterExecuteTool) Description() string {
	return "Invoke a method on the active code interpreter session. Pass the method name (default: execute) and its arguments as <params> child elements, e.g. <params><code>print('hi')</code></params>."
}

// Schema returns the tool's JSON schema.
func (t *CodeInterpreterExecuteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"method": map[string]interface{}{
				"type":        "string",
				"description": "Interpreter method to invoke (execute, listFiles, readFiles, ...). Default: execute",
			},
			"params": map[string]interface{}{
				"type":        "object",
				"description": "Arguments for the method as key-value pairs (e.g., code, language, paths)",
			},
		},
		nil,
	)
}

// CodeInterpreterExecuteInput defines the input parameters for an invoke call.
type CodeInterpreterExecuteInput struct {
	XMLName xml.Name             `xml:"arguments"`
	Method  string               `xml:"method"`
	Params  tools.ArgumentsBlock `xml:"params"`
}

// Execute invokes the interpreter method with the given parameters.
func (t *CodeInterpreterExecuteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input CodeInterpreterExecuteInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	params, err := t.parseParams(input.Params)
	if err != nil {
		return "", nil, err
	}

	result, err := t.spec.ExecuteCode(ctx, input.Method, params)
	if err != nil {
		return "", nil, err
	}

	return result, nil, nil
}

// parseParams converts the <params> child elements into the key-value map
// the interpreter expects. Missing or empty params yield nil so the request
// omits the arguments field.
func (t *CodeInterpreterExecuteTool) parseParams(block tools.ArgumentsBlock) (map[string]any, error) {
	if len(block.InnerXML) == 0 {
		return nil, nil
	}

	wrapped := fmt.Sprintf("<arguments>%s</arguments>", block.InnerXML)
	params, err := tools.XMLToMap([]byte(wrapped))
	if err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	if len(params) == 0 {
		return nil, nil
	}

	return params, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *CodeInterpreterExecuteTool) IsLoopBreaking() bool {
	return false
}
