package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/entrhq/agentcore/pkg/logging"
	"github.com/google/uuid"
)

const (
	// EndpointEnvVar overrides the regional service endpoint when set.
	EndpointEnvVar = "AGENTCORE_ENDPOINT"

	// endpointFormat is the AgentCore data plane endpoint template,
	// parameterized by region.
	endpointFormat = "https://bedrock-agentcore.%s.amazonaws.com"

	// defaultHTTPTimeout bounds each request when no custom HTTP client
	// is injected.
	defaultHTTPTimeout = 30 * time.Second
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("sandbox")
	if err != nil {
		// Logger fell back to stderr due to initialization failure
		debugLog.Warnf("Failed to initialize sandbox logger, using stderr fallback: %v", err)
	}
}

// Sentinel errors returned by the session clients.
var (
	// ErrSessionActive is returned by Start when the client already owns
	// an active session. Stop the current session first.
	ErrSessionActive = errors.New("session already active")

	// ErrNoSession is returned by operations that require a started session.
	ErrNoSession = errors.New("no active session")
)

// APIError describes a non-2xx response from the AgentCore service.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("agentcore API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("agentcore API error %d: %s", e.StatusCode, e.Message)
}

// Option configures a session client at construction time.
type Option func(*apiClient)

// WithEndpoint overrides the regional service endpoint.
// This enables targeting gateway deployments or local emulators.
func WithEndpoint(endpoint string) Option {
	return func(c *apiClient) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	}
}

// WithHTTPClient sets the HTTP client used for all requests.
// Deployments that sign requests inject a client whose transport
// attaches the credentials.
func WithHTTPClient(client *http.Client) Option {
	return func(c *apiClient) {
		c.httpClient = client
	}
}

// apiClient is the JSON-over-HTTPS plumbing shared by the session clients.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

// newAPIClient builds the shared plumbing for a region.
// Endpoint resolution: WithEndpoint option, AGENTCORE_ENDPOINT, regional default.
func newAPIClient(region string, opts ...Option) *apiClient {
	c := &apiClient{
		baseURL:    fmt.Sprintf(endpointFormat, region),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}

	if env := os.Getenv(EndpointEnvVar); env != "" {
		c.baseURL = strings.TrimRight(strings.TrimSpace(env), "/")
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// doJSON sends a JSON request and decodes the JSON response body into out.
// Pass a nil payload for bodyless requests and a nil out to discard the
// response. Non-2xx responses are returned as *APIError.
func (c *apiClient) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		debugLog.Debugf("%s %s failed: %v", method, path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeAPIError(resp)
		debugLog.Debugf("%s %s returned %d: %v", method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// startSessionRequest is the start call body shared by both session kinds.
type startSessionRequest struct {
	Name                  string `json:"name"`
	SessionTimeoutSeconds int    `json:"sessionTimeoutSeconds"`
	ClientToken           string `json:"clientToken"`
}

// startSessionResponse carries the service-assigned session identity.
type startSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// generateSessionName builds a default session name with a short unique suffix.
func generateSessionName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// decodeAPIError builds an *APIError from a non-2xx response.
// Falls back to the raw body, then the HTTP status, when the body
// is not the service's JSON error shape.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		apiErr.Message = resp.Status
		return apiErr
	}

	if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
