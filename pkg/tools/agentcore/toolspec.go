package agentcore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/agentcore/pkg/sandbox"
)

// Default session parameters applied when a caller passes zero values.
const (
	// DefaultBrowserIdentifier is the managed browser sandbox identifier
	DefaultBrowserIdentifier = "aws.browser.v1"

	// DefaultBrowserSessionTimeout is the browser session timeout in seconds
	DefaultBrowserSessionTimeout = 3600

	// DefaultViewExpiry is the live-view URL expiry in seconds
	DefaultViewExpiry = 300

	// DefaultInterpreterIdentifier is the managed code interpreter identifier
	DefaultInterpreterIdentifier = "aws.codeinterpreter.v1"

	// DefaultInterpreterSessionTimeout is the interpreter session timeout in seconds
	DefaultInterpreterSessionTimeout = 900

	// DefaultInvokeMethod is the interpreter method used when none is given
	DefaultInvokeMethod = "execute"
)

// BrowserSession is the browser session client the adapter drives.
// *sandbox.BrowserClient satisfies it.
type BrowserSession interface {
	Start(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error)
	Stop(ctx context.Context) error
	GenerateWSHeaders(ctx context.Context) (string, map[string]string, error)
	GenerateLiveViewURL(ctx context.Context, expires int) (string, error)
	TakeControl(ctx context.Context) error
	ReleaseControl(ctx context.Context) error
}

// InterpreterSession is the code interpreter session client the adapter
// drives. *sandbox.CodeInterpreter satisfies it.
type InterpreterSession interface {
	Start(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error)
	Stop(ctx context.Context) error
	Invoke(ctx context.Context, method string, params map[string]any) (json.RawMessage, error)
}

// Config configures a ToolSpec.
type Config struct {
	// Region is the AWS region hosting the sandbox service. Empty falls
	// back to the environment chain, then us-west-2.
	Region string

	// Browser overrides the default browser session client.
	Browser BrowserSession

	// Interpreter overrides the default code interpreter session client.
	Interpreter InterpreterSession

	// ClientOptions apply to the default session clients built for nil
	// collaborators (endpoint override, custom HTTP client).
	ClientOptions []sandbox.Option
}

// ToolSpec adapts the sandbox session clients into agent-facing operations.
// Every operation is synchronous, returns a descriptive string, and passes
// client errors through unchanged.
type ToolSpec struct {
	region      string
	browser     BrowserSession
	interpreter InterpreterSession
}

// New creates a ToolSpec, building default sandbox clients for any
// collaborator the config leaves nil.
func New(cfg Config) *ToolSpec {
	region := sandbox.ResolveRegion(cfg.Region)

	browser := cfg.Browser
	if browser == nil {
		browser = sandbox.NewBrowserClient(region, cfg.ClientOptions...)
	}

	interpreter := cfg.Interpreter
	if interpreter == nil {
		interpreter = sandbox.NewCodeInterpreter(region, cfg.ClientOptions...)
	}

	return &ToolSpec{
		region:      region,
		browser:     browser,
		interpreter: interpreter,
	}
}

// Region returns the resolved AWS region.
func (s *ToolSpec) Region() string {
	return s.region
}

// StartBrowser starts a browser sandbox session. Zero-value arguments pick
// up the defaults: identifier aws.browser.v1, timeout 3600 seconds.
func (s *ToolSpec) StartBrowser(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error) {
	if identifier == "" {
		identifier = DefaultBrowserIdentifier
	}
	if sessionTimeoutSeconds == 0 {
		sessionTimeoutSeconds = DefaultBrowserSessionTimeout
	}

	sessionID, err := s.browser.Start(ctx, identifier, name, sessionTimeoutSeconds)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Browser session started with ID: %s", sessionID), nil
}

// StopBrowser stops the active browser session.
func (s *ToolSpec) StopBrowser(ctx context.Context) (string, error) {
	if err := s.browser.Stop(ctx); err != nil {
		return "", err
	}

	return "Browser session stopped", nil
}

// GenerateWSHeaders returns the session's WebSocket endpoint and the signed
// header set needed to connect, headers rendered as JSON.
func (s *ToolSpec) GenerateWSHeaders(ctx context.Context) (string, error) {
	wsURL, headers, err := s.browser.GenerateWSHeaders(ctx)
	if err != nil {
		return "", err
	}

	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("WebSocket URL: %s\nHeaders: %s", wsURL, headersJSON), nil
}

// GenerateLiveViewURL returns a presigned live-view URL for the active
// browser session. A zero expiry defaults to 300 seconds.
func (s *ToolSpec) GenerateLiveViewURL(ctx context.Context, expires int) (string, error) {
	if expires == 0 {
		expires = DefaultViewExpiry
	}

	viewURL, err := s.browser.GenerateLiveViewURL(ctx, expires)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Browser view URL: %s", viewURL), nil
}

// TakeControl takes manual control of the browser session, pausing the
// automation stream.
func (s *ToolSpec) TakeControl(ctx context.Context) (string, error) {
	if err := s.browser.TakeControl(ctx); err != nil {
		return "", err
	}

	return "Took control of browser session", nil
}

// ReleaseControl returns control of the browser session to automation.
func (s *ToolSpec) ReleaseControl(ctx context.Context) (string, error) {
	if err := s.browser.ReleaseControl(ctx); err != nil {
		return "", err
	}

	return "Released control of browser session", nil
}

// StartCodeInterpreter starts a code interpreter session. Zero-value
// arguments pick up the defaults: identifier aws.codeinterpreter.v1,
// timeout 900 seconds.
func (s *ToolSpec) StartCodeInterpreter(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error) {
	if identifier == "" {
		identifier = DefaultInterpreterIdentifier
	}
	if sessionTimeoutSeconds == 0 {
		sessionTimeoutSeconds = DefaultInterpreterSessionTimeout
	}

	sessionID, err := s.interpreter.Start(ctx, identifier, name, sessionTimeoutSeconds)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Code interpreter session started with ID: %s", sessionID), nil
}

// StopCodeInterpreter stops the active code interpreter session.
func (s *ToolSpec) StopCodeInterpreter(ctx context.Context) (string, error) {
	if err := s.interpreter.Stop(ctx); err != nil {
		return "", err
	}

	return "Code interpreter session stopped", nil
}

// ExecuteCode invokes a method on the active interpreter session and embeds
// the raw JSON result. An empty method defaults to "execute".
func (s *ToolSpec) ExecuteCode(ctx context.Context, method string, params map[string]any) (string, error) {
	if method == "" {
		method = DefaultInvokeMethod
	}

	result, err := s.interpreter.Invoke(ctx, method, params)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Code execution result: %s", result), nil
}
