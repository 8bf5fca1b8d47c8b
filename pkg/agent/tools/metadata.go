package tools

import "context"

// ToolResult represents the result of a tool execution with optional metadata.
type ToolResult struct {
	Output   string                 // The main output/result message
	Metadata map[string]interface{} // Optional metadata about the execution
}

// MetadataProvider is an optional interface that tools can implement to return
// structured metadata along with their execution result. This metadata can be
// used for tracking, analytics, or other purposes.
//
// For example, session tools can return the identifiers they allocate:
//
//	return &ToolResult{
//	    Output: "Browser session started with ID: 01J8ZQ",
//	    Metadata: map[string]interface{}{
//	        "session_id": "01J8ZQ",
//	        "region":     "us-west-2",
//	    },
//	}
type MetadataProvider interface {
	Tool
	// ExecuteWithMetadata runs the tool and returns both output and metadata
	ExecuteWithMetadata(ctx context.Context, argumentsXML []byte) (*ToolResult, error)
}
