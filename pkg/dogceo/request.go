package dogceo

import (
	"context"
	"encoding/json"
	"fmt"
)

const statusSuccess = "success"

// envelope is the wrapper every endpoint answers with.
type envelope struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

// messageText renders the message of a failed envelope.
func (e envelope) messageText() string {
	if len(e.Message) == 0 || string(e.Message) == "null" {
		return fmt.Sprintf("unexpected status %q", e.Status)
	}
	var s string
	if err := json.Unmarshal(e.Message, &s); err == nil {
		return s
	}
	return string(e.Message)
}

// get is the request executor: one GET against baseURL+endpoint, raw body out.
// The HTTP status code is not inspected; the envelope carries the verdict.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := c.baseURL + endpoint

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		c.log.DebugObj("dogceo request failed", "dogceo_request", map[string]any{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return nil, err
	}
	c.log.DebugObj("dogceo request completed", "dogceo_request", map[string]any{
		"endpoint":    endpoint,
		"status_code": resp.StatusCode(),
	})
	return resp.Body(), nil
}

// fetch runs endpoint through the executor and decodes the envelope message as T.
func fetch[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var zero T

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return zero, wrapError(err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, wrapError(err)
	}
	if env.Status != statusSuccess {
		return zero, newError(env.messageText())
	}

	var out T
	if err := json.Unmarshal(env.Message, &out); err != nil {
		return zero, wrapError(err)
	}
	return out, nil
}
