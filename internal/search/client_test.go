package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lattice/internal/auth"
	"lattice/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeoutSeconds int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(config.APIConfig{
		URL:            srv.URL,
		Key:            "test-key",
		TimeoutSeconds: timeoutSeconds,
	}, zap.NewNop())
	return c, srv
}

func TestSearch_RestrictedScopingHeader(t *testing.T) {
	var gotAuth, gotWorkspace, gotContentType string
	var gotBody searchRequest

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotWorkspace = r.Header.Get(headerWorkspaceID)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"results":[]}`))
	}, 5)

	wctx := auth.Context{Alias: "cogp", Scope: auth.ScopeRestricted, WorkspaceID: "ws-1"}
	resp, err := c.Search(context.Background(), "서울 핀테크", wctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "ws-1", gotWorkspace)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "서울 핀테크", gotBody.Query)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestSearch_UnrestrictedOmitsScopingHeader(t *testing.T) {
	headerPresent := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, headerPresent = r.Header[http.CanonicalHeaderKey(headerWorkspaceID)]
		w.Write([]byte(`{"results":[]}`))
	}, 5)

	_, err := c.Search(context.Background(), "전체 현황", auth.Context{Alias: "admin", Scope: auth.ScopeUnrestricted})
	require.NoError(t, err)
	assert.False(t, headerPresent, "admin requests must never carry the scoping header")
}

func TestSearch_Non200PassesThrough(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}, 5)

	resp, err := c.Search(context.Background(), "q", auth.Context{})
	require.NoError(t, err, "a non-200 status with a body is not a transport failure")
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	require.NotNil(t, resp.Envelope)
	assert.Equal(t, "rate limited", resp.Envelope.ErrorMessage())
	assert.Equal(t, VariantError, Classify(resp.Status, resp.Envelope))
}

func TestSearch_MalformedBodyYieldsNilEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>upstream exploded</html>`))
	}, 5)

	resp, err := c.Search(context.Background(), "q", auth.Context{})
	require.NoError(t, err)
	assert.Nil(t, resp.Envelope)
	assert.Equal(t, VariantError, Classify(resp.Status, resp.Envelope))
}

func TestSearch_Timeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.APIConfig{URL: srv.URL, Key: "k", TimeoutSeconds: 1}, zap.NewNop())
	// Shrink the deadline below the configured timeout to keep the test fast.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Search(ctx, "q", auth.Context{})
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, FailureTimeout, terr.Kind)
}

func TestSearch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listens here anymore

	c := NewClient(config.APIConfig{URL: url, Key: "k", TimeoutSeconds: 1}, zap.NewNop())
	_, err := c.Search(context.Background(), "q", auth.Context{})

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, FailureNetwork, terr.Kind)
	assert.NotEmpty(t, terr.Detail)
}

func TestClassifyTransportError_Unexpected(t *testing.T) {
	terr := classifyTransportError(errors.New("boom"))
	assert.Equal(t, FailureUnexpected, terr.Kind)
	assert.Equal(t, "boom", terr.Detail)
}

func TestTransportError_Message(t *testing.T) {
	terr := &TransportError{Kind: FailureTimeout, Detail: "request timed out"}
	assert.Contains(t, terr.Error(), "timeout")
	assert.Contains(t, terr.Error(), "request timed out")
}
