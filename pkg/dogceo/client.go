package dogceo

import (
	"strings"
	"time"

	"github.com/samvad-hq/dogceo-go/pkg/httpclient"
)

// DefaultBaseURL is the public API origin.
const DefaultBaseURL = "https://dog.ceo/api/"

// Logger is the optional logging surface of the client.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}

// Client talks to the dog.ceo API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    httpclient.Client
	log     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another origin, e.g. a mirror or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the request executor.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request of the default executor. Ignored with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger enables debug records for each request.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a Client. Without options it targets DefaultBaseURL with no timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	return c
}

// BaseURL returns the origin every endpoint path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }
