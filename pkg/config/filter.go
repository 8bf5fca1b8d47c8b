package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ToolFilter decides which tool names a registry may expose
type ToolFilter struct {
	patterns []glob.Glob
}

// NewToolFilter compiles a set of glob patterns into a tool filter
func NewToolFilter(patterns []string) (*ToolFilter, error) {
	filter := &ToolFilter{}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid tool pattern '%s': %w", pattern, err)
		}
		filter.patterns = append(filter.patterns, g)
	}

	return filter, nil
}

// Allows returns true if the tool name matches any configured pattern.
// A nil filter or an empty pattern list allows every tool.
func (f *ToolFilter) Allows(name string) bool {
	if f == nil || len(f.patterns) == 0 {
		return true
	}

	for _, pattern := range f.patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}
