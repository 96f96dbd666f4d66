package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
	"github.com/dmitrijs2005/tablekeeper/internal/common"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

// envelope is the fixed response shape shared by every backend endpoint.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client sends requests to the TableKeeper backend. It is safe for concurrent
// use.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     logging.Logger
}

// NewClient builds a Client. baseURL must already include the API prefix,
// e.g. "http://localhost:8080/api/v1". The session store supplies the bearer
// token for outgoing requests and is cleared when the server rejects one as
// unauthenticated.
func NewClient(baseURL string, timeout time.Duration, sess *session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// send performs one request/response round trip: prefix the path, attach the
// token if the session holds one, decode the envelope, and unmarshal data
// into out (which may be nil for operations without a payload).
func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, method, path, requestID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, method, path, requestID, err)
	}

	c.log.Info(ctx, "request completed",
		"method", method, "path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start).String(),
	)

	var env envelope
	envErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		// Cross-cutting policy: an authentication-rejected response logs the
		// user out locally before the error reaches the caller.
		if err := c.session.Logout(); err != nil {
			c.log.Error(ctx, "failed to clear session", "error", err.Error())
		}
		return &Error{Kind: KindAuthRejected, Status: resp.StatusCode, Message: env.Message}
	}

	if envErr != nil {
		return &Error{
			Kind:    KindServerRejected,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed response (status %d)", resp.StatusCode),
		}
	}

	if env.Code != common.EnvelopeCodeOK {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed (code %d)", env.Code)
		}
		return &Error{Kind: KindServerRejected, Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{
				Kind:    KindServerRejected,
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("unexpected payload: %v", err),
			}
		}
	}
	return nil
}

// transportError classifies failures that happened before a response was
// decoded: timeouts vs everything the dialer could not reach.
func (c *Client) transportError(ctx context.Context, method, path, requestID string, err error) error {
	c.log.Warn(ctx, "request failed",
		"method", method, "path", path,
		"request_id", requestID,
		"error", err.Error(),
	)

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: err.Error()}
	}
	return &Error{Kind: KindUnavailable, Message: err.Error()}
}
