package sandbox

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// Automation stream statuses for the live view control handoff.
const (
	streamStatusEnabled  = "ENABLED"
	streamStatusDisabled = "DISABLED"
)

// BrowserClient owns one remote browser sandbox session and its lifecycle.
//
// A mutex guards the session identity so hosting frameworks may call
// operations from multiple goroutines; the one-session-per-client rule
// holds either way.
type BrowserClient struct {
	api    *apiClient
	region string

	mu         sync.Mutex
	identifier string
	sessionID  string
}

// NewBrowserClient creates a client for browser sandbox sessions in the
// given region. Use ResolveRegion to apply the environment fallback chain.
func NewBrowserClient(region string, opts ...Option) *BrowserClient {
	return &BrowserClient{
		api:    newAPIClient(region, opts...),
		region: region,
	}
}

// Region returns the region the client was constructed with.
func (c *BrowserClient) Region() string {
	return c.region
}

// SessionID returns the active session ID, or an empty string when no
// session is active.
func (c *BrowserClient) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Start reserves a browser sandbox and returns the session ID the service
// assigned. An empty name gets a generated one. The client holds the session
// identity until Stop succeeds; starting again before that returns
// ErrSessionActive.
func (c *BrowserClient) Start(ctx context.Context, identifier, name string, sessionTimeoutSeconds int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != "" {
		return "", fmt.Errorf("browser session %q: %w", c.sessionID, ErrSessionActive)
	}

	if name == "" {
		name = generateSessionName("browser-session")
	}

	payload := startSessionRequest{
		Name:                  name,
		SessionTimeoutSeconds: sessionTimeoutSeconds,
		ClientToken:           uuid.NewString(),
	}

	var resp startSessionResponse
	path := fmt.Sprintf("/browsers/%s/sessions/start", identifier)
	if err := c.api.doJSON(ctx, http.MethodPost, path, payload, &resp); err != nil {
		return "", fmt.Errorf("failed to start browser session: %w", err)
	}

	c.identifier = identifier
	c.sessionID = resp.SessionID
	return resp.SessionID, nil
}

// Stop ends the active session. The held identity clears only on success,
// so a failed stop can be retried.
func (c *BrowserClient) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return fmt.Errorf("failed to stop browser session: %w", ErrNoSession)
	}

	path := fmt.Sprintf("/browsers/%s/sessions/%s/stop", c.identifier, c.sessionID)
	if err := c.api.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to stop browser session: %w", err)
	}

	c.identifier = ""
	c.sessionID = ""
	return nil
}

// GenerateWSHeaders fetches the WebSocket endpoint and the signed header set
// for connecting an automation driver to the active session. The service
// computes the headers; they are returned verbatim.
func (c *BrowserClient) GenerateWSHeaders(ctx context.Context) (string, map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return "", nil, fmt.Errorf("failed to generate websocket headers: %w", ErrNoSession)
	}

	var resp wsHeadersResponse
	path := fmt.Sprintf("/browsers/%s/sessions/%s/ws-headers", c.identifier, c.sessionID)
	if err := c.api.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", nil, fmt.Errorf("failed to generate websocket headers: %w", err)
	}

	return resp.URL, resp.Headers, nil
}

// GenerateLiveViewURL requests a presigned URL for viewing the active
// session, valid for expires seconds. The URL is generated remotely and
// each call returns a fresh one.
func (c *BrowserClient) GenerateLiveViewURL(ctx context.Context, expires int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return "", fmt.Errorf("failed to generate live view URL: %w", ErrNoSession)
	}

	var resp liveViewResponse
	path := fmt.Sprintf("/browsers/%s/sessions/%s/live-view?expiresInSeconds=%d", c.identifier, c.sessionID, expires)
	if err := c.api.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to generate live view URL: %w", err)
	}

	return resp.URL, nil
}

// TakeControl pauses the automation stream so the live view user has
// exclusive control of the session.
func (c *BrowserClient) TakeControl(ctx context.Context) error {
	if err := c.updateAutomationStream(ctx, streamStatusDisabled); err != nil {
		return fmt.Errorf("failed to take control: %w", err)
	}
	return nil
}

// ReleaseControl re-enables the automation stream after TakeControl.
func (c *BrowserClient) ReleaseControl(ctx context.Context) error {
	if err := c.updateAutomationStream(ctx, streamStatusEnabled); err != nil {
		return fmt.Errorf("failed to release control: %w", err)
	}
	return nil
}

// updateAutomationStream posts the requested automation stream status to
// the active session.
func (c *BrowserClient) updateAutomationStream(ctx context.Context, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return ErrNoSession
	}

	payload := streamUpdateRequest{AutomationStreamStatus: status}
	path := fmt.Sprintf("/browsers/%s/sessions/%s/streams/update", c.identifier, c.sessionID)
	return c.api.doJSON(ctx, http.MethodPost, path, payload, nil)
}

// wsHeadersResponse is the connection detail set for the automation stream.
type wsHeadersResponse struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// liveViewResponse carries the presigned viewing URL.
type liveViewResponse struct {
	URL string `json:"url"`
}

// streamUpdateRequest switches the automation stream on or off.
type streamUpdateRequest struct {
	AutomationStreamStatus string `json:"automationStreamStatus"`
}
