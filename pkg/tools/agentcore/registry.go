package agentcore

import (
	"github.com/entrhq/agentcore/pkg/agent/tools"
	"github.com/entrhq/agentcore/pkg/config"
)

// Registry manages the agentcore sandbox tool set.
type Registry struct {
	spec   *ToolSpec
	filter *config.ToolFilter
	tools  []tools.Tool
}

// NewRegistry creates a registry for the given ToolSpec. A nil filter
// exposes every tool.
func NewRegistry(spec *ToolSpec, filter *config.ToolFilter) *Registry {
	return &Registry{
		spec:   spec,
		filter: filter,
		tools:  make([]tools.Tool, 0),
	}
}

// RegisterTools creates and returns the sandbox tools, restricted to the
// names the filter allows. This should be called by the main tool registry
// to get the agentcore tools.
func (r *Registry) RegisterTools() []tools.Tool {
	if len(r.tools) > 0 {
		return r.tools
	}

	all := []tools.Tool{
		NewBrowserStartTool(r.spec),
		NewBrowserStopTool(r.spec),
		NewBrowserViewTool(r.spec),
		NewBrowserControlTool(r.spec),
		NewBrowserReleaseTool(r.spec),
		NewBrowserWSHeadersTool(r.spec),
		NewCodeInterpreterStartTool(r.spec),
		NewCodeInterpreterStopTool(r.spec),
		NewCodeInterpreterExecuteTool(r.spec),
	}

	for _, tool := range all {
		if r.filter.Allows(tool.Name()) {
			r.tools = append(r.tools, tool)
		}
	}

	return r.tools
}

// GetTools returns the current set of registered tools.
func (r *Registry) GetTools() []tools.Tool {
	return r.tools
}

// GetToolSpec returns the underlying ToolSpec.
// This allows external code to drive the sessions directly if needed.
func (r *Registry) GetToolSpec() *ToolSpec {
	return r.spec
}
