package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aspcare/models"
	"aspcare/services/audit"

	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// Audit outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeFailed    = "failed"
	OutcomeNetwork   = "network"
	OutcomeCancelled = "cancelled"
)

type sessionKey struct{}

// WithSessionID tags ctx so audit entries can be attributed to a session.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// Client calls the remote booking API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Recorder   audit.Recorder
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, recorder audit.Recorder) *Client {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
		Recorder:   recorder,
	}
}

// do sends the request and decodes a JSON body into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	raw, err := c.send(ctx, method, path, query, token, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestFailedError{Status: http.StatusOK, Message: "malformed response", Body: raw, Err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, token string, body any) ([]byte, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, method, path, time.Since(start), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	elapsed := time.Since(start)
	if err != nil {
		return nil, c.transportError(ctx, method, path, elapsed, err)
	}

	c.Logger.Debug("booking api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", elapsed))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.record(ctx, method, path, resp.StatusCode, elapsed, OutcomeNotFound, nil)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		failure := &RequestFailedError{Status: resp.StatusCode, Message: upstreamMessage(raw), Body: raw}
		c.record(ctx, method, path, resp.StatusCode, elapsed, OutcomeFailed, failure)
		return nil, failure
	}

	c.record(ctx, method, path, resp.StatusCode, elapsed, OutcomeOK, nil)
	return raw, nil
}

func (c *Client) transportError(ctx context.Context, method, path string, elapsed time.Duration, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		c.record(ctx, method, path, 0, elapsed, OutcomeCancelled, err)
		return ErrCancelled
	}
	c.Logger.Warn("booking api unreachable",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(err))
	c.record(ctx, method, path, 0, elapsed, OutcomeNetwork, err)
	return &NetworkError{Op: method + " " + path, Err: err}
}

func (c *Client) record(ctx context.Context, method, path string, status int, elapsed time.Duration, outcome string, err error) {
	entry := models.AuditEntry{
		SessionID:  sessionIDFrom(ctx),
		Method:     method,
		Path:       path,
		Status:     status,
		DurationMs: elapsed.Milliseconds(),
		Outcome:    outcome,
		At:         time.Now().UTC(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	c.Recorder.Record(ctx, entry)
}

// upstreamMessage extracts "message" (or "error") from a JSON error body.
func upstreamMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
