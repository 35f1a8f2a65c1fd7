package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lattice/internal/auth"
	"lattice/internal/config"
)

// headerWorkspaceID scopes a restricted request to one workspace. The
// backend enforces data isolation on this header: it must be present with
// the workspace id in restricted mode and absent in admin mode.
const headerWorkspaceID = "x-workspace-id"

// FailureKind distinguishes the three transport failure classes. Anything
// the backend answered, including non-200 statuses with a body, is not a
// transport failure and flows to the classifier instead.
type FailureKind int

const (
	FailureTimeout FailureKind = iota
	FailureNetwork
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureNetwork:
		return "network"
	default:
		return "unexpected"
	}
}

// TransportError is the only error type Search returns. Callers branch on
// Kind rather than string-matching.
type TransportError struct {
	Kind   FailureKind
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("search request failed (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("search request failed (%s)", e.Kind)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Response is what the backend answered: status, raw body and the decoded
// envelope. Envelope is nil when the body was not valid JSON; the
// classifier treats that as an unrecognized payload.
type Response struct {
	Status   int
	Raw      []byte
	Envelope *Envelope
}

// Client sends queries to the search endpoint. One query is in flight per
// session at a time; the client itself is stateless and safe to share.
type Client struct {
	endpoint string
	key      string
	http     *http.Client
	logger   *zap.Logger
}

// NewClient builds a client from API configuration. logger may not be nil;
// pass zap.NewNop() to silence it.
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint: cfg.URL,
		key:      cfg.Key,
		http:     &http.Client{Timeout: cfg.Timeout()},
		logger:   logger,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search posts one query, scoped by the workspace context. The result is
// either a Response (whatever the status) or a *TransportError; never both,
// never anything else.
func (c *Client) Search(ctx context.Context, query string, wctx auth.Context) (*Response, error) {
	// Apply the configured timeout when the caller did not set a deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.http.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.http.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, &TransportError{Kind: FailureUnexpected, Detail: "encoding request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Kind: FailureUnexpected, Detail: "building request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	if wctx.Scope == auth.ScopeRestricted {
		req.Header.Set(headerWorkspaceID, wctx.WorkspaceID)
	}

	requestID := uuid.NewString()[:8]
	start := time.Now()
	c.logger.Debug("search request",
		zap.String("request_id", requestID),
		zap.Bool("scoped", wctx.Scope == auth.ScopeRestricted),
		zap.Int("query_len", len(query)))

	resp, err := c.http.Do(req)
	if err != nil {
		terr := classifyTransportError(err)
		c.logger.Warn("search transport failure",
			zap.String("request_id", requestID),
			zap.String("kind", terr.Kind.String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: FailureUnexpected, Detail: "reading response body", Err: err}
	}

	// A body that is not JSON still produces a Response; the classifier
	// degrades it to the Error variant.
	env, parseErr := ParseEnvelope(raw)
	if parseErr != nil {
		env = nil
	}

	c.logger.Info("search response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)))

	return &Response{Status: resp.StatusCode, Raw: raw, Envelope: env}, nil
}

// classifyTransportError sorts a client-side failure into one of the three
// kinds. Timeouts (deadline or net-level) come first; anything reachable
// through *url.Error is a network failure; the rest is unexpected.
func classifyTransportError(err error) *TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: FailureTimeout, Detail: "request timed out", Err: err}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return &TransportError{Kind: FailureTimeout, Detail: "request timed out", Err: err}
		}
		return &TransportError{Kind: FailureNetwork, Detail: uerr.Err.Error(), Err: err}
	}
	return &TransportError{Kind: FailureUnexpected, Detail: err.Error(), Err: err}
}
