package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// CodeInterpreter owns one remote code interpreter sandbox session and
// its lifecycle. Like BrowserClient, it enforces one active session per
// client and is safe for concurrent callers.
type CodeInterpreter struct {
	api    *apiClient
	region string

	mu         sync.Mutex
	identifier string
	sessionID  string
}

// NewCodeInterpreter creates a client for code interpreter sandbox sessions
// in the given region. Use ResolveRegion to apply the environment fallback
// chain.
func NewCodeInterpreter(region string, opts ...Option) *CodeInterpreter {
	return &CodeInterpreter{
		api:    newAPIClient(region, opts...),
		region: region,
	}
}

// Region returns the region the client was constructed with.
func (c *CodeInterpreter) Region() string {
	return c.region
}

// SessionID returns the active session ID, or an empty string when no
// session is active.
func (c *CodeInterpreter) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Start reserves a code interpreter sandbox and returns the session ID the
// service assigned. An empty name gets a generated one. Starting while a
// session is active returns ErrSessionActive.
func (c *CodeInterpreter) Start(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != "" {
		return "", fmt.Errorf("code interpreter session %q: %w", c.sessionID, ErrSessionActive)
	}

	if name == "" {
		name = generateSessionName("interpreter-session")
	}

	payload := startSessionRequest{
		Name:                  name,
		SessionTimeoutSeconds: sessionTimeoutSeconds,
		ClientToken:           uuid.NewString(),
	}

	var resp startSessionResponse
	path := fmt.Sprintf("/code-interpreters/%s/sessions/start", identifier)
	if err := c.api.doJSON(ctx, http.MethodPost, path, payload, &resp); err != nil {
		return "", fmt.Errorf("failed to start code interpreter session: %w", err)
	}

	c.identifier = identifier
	c.sessionID = resp.SessionID
	return resp.SessionID, nil
}

// Stop ends the active session. The held identity clears only on success,
// so a failed stop can be retried.
func (c *CodeInterpreter) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return fmt.Errorf("failed to stop code interpreter session: %w", ErrNoSession)
	}

	path := fmt.Sprintf("/code-interpreters/%s/sessions/%s/stop", c.identifier, c.sessionID)
	if err := c.api.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to stop code interpreter session: %w", err)
	}

	c.identifier = ""
	c.sessionID = ""
	return nil
}

// Invoke runs the named sandbox method with the given parameters and returns
// the raw JSON result exactly as the service produced it. The sandbox defines
// the method vocabulary ("execute" and friends); this client does not
// interpret it.
func (c *CodeInterpreter) Invoke(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return nil, fmt.Errorf("failed to invoke %q: %w", method, ErrNoSession)
	}

	payload := invokeRequest{
		Name:      method,
		Arguments: params,
	}

	var result json.RawMessage
	path := fmt.Sprintf("/code-interpreters/%s/sessions/%s/invoke", c.identifier, c.sessionID)
	if err := c.api.doJSON(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, fmt.Errorf("failed to invoke %q: %w", method, err)
	}

	return result, nil
}

// invokeRequest names a sandbox method and its parameters.
type invokeRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}
