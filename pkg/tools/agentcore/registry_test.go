package agentcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/agentcore/pkg/config"
)

func registryToolNames(r *Registry) []string {
	var names []string
	for _, tool := range r.RegisterTools() {
		names = append(names, tool.Name())
	}
	return names
}

func TestRegistryReturnsAllTools(t *testing.T) {
	registry := NewRegistry(newTestSpec(nil, nil), nil)

	names := registryToolNames(registry)
	assert.Len(t, names, 9)
	assert.Equal(t, []string{
		"browser_start",
		"browser_stop",
		"browser_view",
		"browser_control",
		"browser_release",
		"browser_ws_headers",
		"code_interpreter_start",
		"code_interpreter_stop",
		"code_interpreter_execute",
	}, names)
}

func TestRegistryAppliesFilter(t *testing.T) {
	filter, err := config.NewToolFilter([]string{"browser_*"})
	require.NoError(t, err)

	registry := NewRegistry(newTestSpec(nil, nil), filter)

	names := registryToolNames(registry)
	assert.Len(t, names, 6)
	for _, name := range names {
		assert.NotContains(t, name, "code_interpreter")
	}
}

func TestRegistryEmptyFilterAllowsAll(t *testing.T) {
	filter, err := config.NewToolFilter(nil)
	require.NoError(t, err)

	registry := NewRegistry(newTestSpec(nil, nil), filter)
	assert.Len(t, registryToolNames(registry), 9)
}

func TestRegistryFilterExcludesByName(t *testing.T) {
	filter, err := config.NewToolFilter([]string{"browser_start", "browser_stop"})
	require.NoError(t, err)

	registry := NewRegistry(newTestSpec(nil, nil), filter)

	names := registryToolNames(registry)
	assert.Equal(t, []string{"browser_start", "browser_stop"}, names)
}

func TestRegistryMemoizesTools(t *testing.T) {
	registry := NewRegistry(newTestSpec(nil, nil), nil)

	first := registry.RegisterTools()
	second := registry.RegisterTools()

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}

	assert.Equal(t, first, registry.GetTools())
}

func TestRegistryGetToolSpec(t *testing.T) {
	spec := newTestSpec(nil, nil)
	registry := NewRegistry(spec, nil)

	assert.Same(t, spec, registry.GetToolSpec())
}
