// Package agentcore exposes remote AgentCore sandbox sessions as agent tools.
//
// The package lets agents drive cloud-hosted browser and code interpreter
// sandboxes: sessions are created against the regional AgentCore service,
// persist across agent loop iterations, and are torn down explicitly or by
// the service when their timeout expires.
//
// # Architecture
//
// The package is built around three core concepts:
//
// 1. ToolSpec: Adapter holding the resolved region and one session client per sandbox kind
// 2. Session clients: pkg/sandbox HTTP clients owning one live session each
// 3. Tools: One tools.Tool per sandbox operation, all backed by the shared ToolSpec
//
// # Session Lifecycle
//
// Sandbox sessions follow this lifecycle:
//
//  1. Start: browser_start / code_interpreter_start create a named remote session
//  2. Use: view, control, ws-headers, and execute operations act on the session
//  3. Stop: browser_stop / code_interpreter_stop release the remote resources
//  4. Timeout: the service reclaims sessions after session_timeout_seconds
//
// Each ToolSpec drives at most one browser session and one interpreter session
// at a time; starting a second session without stopping the first fails.
//
// # Tool Registration
//
// Registry returns the full tool set for a ToolSpec. An optional tool filter
// (glob patterns from configuration) restricts which tools are exposed, so a
// deployment can offer, say, only the browser family.
//
// # Security
//
// The sandbox runs remotely; nothing executes on the host. WebSocket headers
// are computed and signed by the service, live-view URLs are presigned with a
// bounded expiry, and request credentials come from the HTTP client injected
// into the session clients.
//
// # Example Usage
//
//	spec := agentcore.New(agentcore.Config{Region: "us-west-2"})
//
//	// Start a browser session and hand its endpoint to an automation driver
//	msg, err := spec.StartBrowser(ctx, "", "research", 0)
//	headers, err := spec.GenerateWSHeaders(ctx)
//
//	// Run code remotely
//	result, err := spec.ExecuteCode(ctx, "execute", map[string]any{
//	    "code": "print('hello')",
//	})
//
//	// Clean up
//	_, err = spec.StopBrowser(ctx)
package agentcore
