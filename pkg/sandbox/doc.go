// Package sandbox provides clients for remote AgentCore sandbox sessions.
//
// The package exposes two session clients, one per sandbox kind:
//
//  1. BrowserClient: a remotely hosted browser with live view and control handoff
//  2. CodeInterpreter: a remotely hosted code execution environment
//
// Each client owns at most one active session at a time. Sessions are
// time-bounded execution contexts identified by an opaque session ID that the
// service assigns on start. All the session machinery (lifecycle, live-view
// streaming, WebSocket negotiation, presigned URL generation) runs remotely;
// these clients only issue the JSON/HTTPS calls that drive it.
//
// # Session Lifecycle
//
// Sessions follow this lifecycle:
//
//  1. Start: reserves a sandbox and returns its session ID
//  2. Use: invoke methods, fetch view URLs, hand off control
//  3. Stop: releases the sandbox; the service also expires idle sessions
//     after the timeout requested at start
//
// Starting a second session on a client that already owns one fails with
// ErrSessionActive; operations that need a session fail with ErrNoSession
// until Start succeeds.
//
// # Region and Endpoint
//
// Clients are constructed with an AWS region. ResolveRegion implements the
// fallback chain (explicit value, AWS_REGION, AWS_DEFAULT_REGION, default)
// and the regional endpoint can be overridden per client or through the
// AGENTCORE_ENDPOINT environment variable.
//
// # Example Usage
//
//	client := sandbox.NewBrowserClient(sandbox.ResolveRegion(""))
//
//	sessionID, err := client.Start(ctx, "aws.browser.v1", "research", 3600)
//	if err != nil {
//	    return err
//	}
//
//	wsURL, headers, err := client.GenerateWSHeaders(ctx)
//	if err != nil {
//	    return err
//	}
//
//	// Hand the connection details to an automation driver
//	browser, err := sandbox.Attach(ctx, wsURL, headers)
//
//	// Clean up
//	err = client.Stop(ctx)
//
// # Authentication
//
// The clients perform no request signing of their own. Deployments that
// require SigV4 or bearer credentials inject an *http.Client via
// WithHTTPClient whose transport attaches them.
package sandbox
