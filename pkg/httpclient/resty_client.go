package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Option tweaks the underlying resty.Client.
type Option func(*resty.Client)

// WithTimeout bounds every request made by the client. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient; a non-positive timeout leaves requests unbounded.
func NewRestyClient(timeout time.Duration, opts ...Option) *RestyClient {
	return &RestyClient{client: NewRestyHTTPClient(append([]Option{WithTimeout(timeout)}, opts...)...)}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(opts ...Option) *resty.Client {
	c := resty.New()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get performs an HTTP GET request. Non-2xx responses are returned, not turned into errors.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
