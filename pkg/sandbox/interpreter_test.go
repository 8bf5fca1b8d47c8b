package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterpreterIdentifier = "aws.codeinterpreter.v1"

func TestCodeInterpreterStart(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"sessionId":"01J8ZQCODE"}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	sessionID, err := client.Start(context.Background(), testInterpreterIdentifier, "analysis", 900)
	require.NoError(t, err)
	assert.Equal(t, "01J8ZQCODE", sessionID)
	assert.Equal(t, "01J8ZQCODE", client.SessionID())

	assert.Equal(t, "/code-interpreters/aws.codeinterpreter.v1/sessions/start", gotPath)
	assert.Equal(t, "analysis", gotBody["name"])
	assert.Equal(t, float64(900), gotBody["sessionTimeoutSeconds"])
	assert.NotEmpty(t, gotBody["clientToken"])
}

func TestCodeInterpreterStartGeneratesName(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"sessionId":"sid-1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	_, err := client.Start(context.Background(), testInterpreterIdentifier, "", 900)
	require.NoError(t, err)

	name, _ := gotBody["name"].(string)
	assert.True(t, strings.HasPrefix(name, "interpreter-session-"), "generated name %q", name)
}

func TestCodeInterpreterLifecycleErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sessionId":"sid-1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	// Stop and Invoke need a started session
	assert.ErrorIs(t, client.Stop(context.Background()), ErrNoSession)

	_, err := client.Invoke(context.Background(), "execute", nil)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = client.Start(context.Background(), testInterpreterIdentifier, "analysis", 900)
	require.NoError(t, err)

	_, err = client.Start(context.Background(), testInterpreterIdentifier, "another", 900)
	assert.ErrorIs(t, err, ErrSessionActive)
}

func TestCodeInterpreterStop(t *testing.T) {
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"sessionId":"sid-1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	_, err := client.Start(context.Background(), testInterpreterIdentifier, "analysis", 900)
	require.NoError(t, err)

	require.NoError(t, client.Stop(context.Background()))
	assert.Empty(t, client.SessionID())
	assert.Equal(t, []string{
		"/code-interpreters/aws.codeinterpreter.v1/sessions/start",
		"/code-interpreters/aws.codeinterpreter.v1/sessions/sid-1/stop",
	}, paths)
}

func TestCodeInterpreterInvoke(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sessions/start") {
			_, _ = w.Write([]byte(`{"sessionId":"sid-1"}`))
			return
		}

		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"structuredContent":{"stdout":"2","exitCode":0}}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	_, err := client.Start(context.Background(), testInterpreterIdentifier, "analysis", 900)
	require.NoError(t, err)

	result, err := client.Invoke(context.Background(), "execute", map[string]any{"code": "1+1"})
	require.NoError(t, err)

	assert.Equal(t, "/code-interpreters/aws.codeinterpreter.v1/sessions/sid-1/invoke", gotPath)
	assert.Equal(t, "execute", gotBody["name"])
	assert.Equal(t, map[string]any{"code": "1+1"}, gotBody["arguments"])

	// The result is the service's JSON, untouched
	assert.JSONEq(t, `{"structuredContent":{"stdout":"2","exitCode":0}}`, string(result))
}

func TestCodeInterpreterInvokeOmitsEmptyParams(t *testing.T) {
	var rawBody map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sessions/start") {
			_, _ = w.Write([]byte(`{"sessionId":"sid-1"}`))
			return
		}

		_ = json.NewDecoder(r.Body).Decode(&rawBody)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := NewCodeInterpreter("us-west-2", WithEndpoint(server.URL))

	_, err := client.Start(context.Background(), testInterpreterIdentifier, "analysis", 900)
	require.NoError(t, err)

	_, err = client.Invoke(context.Background(), "listFiles", nil)
	require.NoError(t, err)

	assert.Contains(t, rawBody, "name")
	assert.NotContains(t, rawBody, "arguments")
}
