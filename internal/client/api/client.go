// Package api is the gateway to the community backing store: a plain REST
// service with JSON bodies at fixed paths. It is the only package that
// issues outbound network calls.
//
// Every operation performs exactly one call (no retries, no caching) and
// returns a Result envelope; transport faults, non-2xx statuses, and
// malformed payloads all collapse into the failure branch of the envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/greenvalley/community/internal/logging"
)

// Client holds the fixed base URL and the underlying HTTP client.
// It is stateless per call and safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	log      logging.Logger
	validate *validator.Validate
}

// New builds a gateway client for the store at baseURL. A zero timeout
// means requests wait indefinitely, which mirrors the original client;
// passing one bounds every call.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// request performs one HTTP call and translates the outcome into a Result.
// A nil body means a plain read with no payload.
func request[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Fail[T]("failed to encode request body: " + err.Error())
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return Fail[T](err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err.Error())
		msg := err.Error()
		if msg == "" {
			msg = msgNetworkError
		}
		return Fail[T](msg)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "failed to read response body", "method", method, "path", path, "request_id", reqID, "error", err.Error())
		return Fail[T](err.Error())
	}

	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "request_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var serverErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &serverErr)
		msg := serverErr.Message
		if msg == "" {
			msg = msgRequestFailed
		}
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return Fail[T](msg)
	}

	var data T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			c.log.Warn(ctx, "malformed response payload", "method", method, "path", path, "request_id", reqID, "error", err.Error())
			return Fail[T]("invalid response payload")
		}
	}
	return Ok(data)
}

// checkValid runs struct-tag validation on a decoded payload and converts a
// violation into the same failure path malformed JSON takes.
func checkValid[T any](ctx context.Context, c *Client, res Result[T], v any) Result[T] {
	if err := c.validate.Struct(v); err != nil {
		c.log.Warn(ctx, "response failed validation", "error", err.Error())
		return Fail[T]("invalid response payload")
	}
	return res
}
