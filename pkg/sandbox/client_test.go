package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointResolution(t *testing.T) {
	t.Run("regional default", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "")

		c := newAPIClient("us-west-2")
		assert.Equal(t, "https://bedrock-agentcore.us-west-2.amazonaws.com", c.baseURL)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "https://gateway.internal/agentcore/")

		c := newAPIClient("us-west-2")
		assert.Equal(t, "https://gateway.internal/agentcore", c.baseURL)
	})

	t.Run("option wins over environment", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "https://gateway.internal/agentcore")

		c := newAPIClient("us-west-2", WithEndpoint("http://localhost:8080/"))
		assert.Equal(t, "http://localhost:8080", c.baseURL)
	})
}

func TestDoJSONRequestShape(t *testing.T) {
	var gotContentType, gotAccept string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	c := newAPIClient("us-west-2", WithEndpoint(server.URL))

	var out map[string]any
	err := c.doJSON(context.Background(), http.MethodPost, "/echo", map[string]string{"hello": "world"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, map[string]any{"hello": "world"}, gotBody)
	assert.Equal(t, map[string]any{"ok": true}, out)
}

func TestDoJSONAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "service error shape",
			status:      http.StatusConflict,
			body:        `{"code":"ConflictException","message":"session limit reached"}`,
			wantCode:    "ConflictException",
			wantMessage: "session limit reached",
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable",
			wantMessage: "upstream unavailable",
		},
		{
			name:        "empty body falls back to status",
			status:      http.StatusServiceUnavailable,
			wantMessage: "503 Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			c := newAPIClient("us-west-2", WithEndpoint(server.URL))
			err := c.doJSON(context.Background(), http.MethodGet, "/anything", nil, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestAPIErrorString(t *testing.T) {
	withCode := &APIError{StatusCode: 409, Code: "ConflictException", Message: "already started"}
	assert.Equal(t, "agentcore API error 409 (ConflictException): already started", withCode.Error())

	withoutCode := &APIError{StatusCode: 500, Message: "internal error"}
	assert.Equal(t, "agentcore API error 500: internal error", withoutCode.Error())
}

func TestGenerateSessionName(t *testing.T) {
	name := generateSessionName("browser-session")

	assert.Regexp(t, `^browser-session-[0-9a-f]{8}$`, name)
	assert.NotEqual(t, name, generateSessionName("browser-session"))
}
