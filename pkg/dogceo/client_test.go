package dogceo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samvad-hq/dogceo-go/pkg/httpclient"
)

// catalogServer answers every request with a fixed status code and body and records the paths.
type catalogServer struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
}

func newCatalogServer(t *testing.T, code int, body string) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		cs.mu.Lock()
		cs.paths = append(cs.paths, r.URL.Path)
		cs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *catalogServer) lastPath() string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.paths) == 0 {
		return ""
	}
	return cs.paths[len(cs.paths)-1]
}

func (cs *catalogServer) client() *Client {
	return New(WithBaseURL(cs.URL + "/api/"))
}

// failingHTTPClient fails every call at the transport level.
type failingHTTPClient struct{ err error }

func (f failingHTTPClient) Get(context.Context, string, map[string]string) (httpclient.Response, error) {
	return nil, f.err
}

// operation adapts every client method to a common shape for table tests.
type operation struct {
	name string
	path string
	call func(context.Context, *Client) (any, error)
}

func operations() []operation {
	return []operation{
		{"RandomImage", "/api/breeds/image/random", func(ctx context.Context, c *Client) (any, error) { return c.RandomImage(ctx) }},
		{"RandomImages", "/api/breeds/image/random/3", func(ctx context.Context, c *Client) (any, error) { return c.RandomImages(ctx, 3) }},
		{"RandomImageByBreed", "/api/breed/hound/images/random", func(ctx context.Context, c *Client) (any, error) {
			return c.RandomImageByBreed(ctx, "hound")
		}},
		{"RandomImagesByBreed", "/api/breed/hound/images/random/4", func(ctx context.Context, c *Client) (any, error) {
			return c.RandomImagesByBreed(ctx, "hound", 4)
		}},
		{"ImagesByBreed", "/api/breed/hound/images", func(ctx context.Context, c *Client) (any, error) {
			return c.ImagesByBreed(ctx, "hound")
		}},
		{"RandomImageBySubBreed", "/api/breed/hound/afghan/images/random", func(ctx context.Context, c *Client) (any, error) {
			return c.RandomImageBySubBreed(ctx, "hound", "afghan")
		}},
		{"RandomImagesBySubBreed", "/api/breed/hound/afghan/images/random/2", func(ctx context.Context, c *Client) (any, error) {
			return c.RandomImagesBySubBreed(ctx, "hound", "afghan", 2)
		}},
		{"ImagesBySubBreed", "/api/breed/hound/afghan/images", func(ctx context.Context, c *Client) (any, error) {
			return c.ImagesBySubBreed(ctx, "hound", "afghan")
		}},
		{"Breeds", "/api/breeds/list/all", func(ctx context.Context, c *Client) (any, error) { return c.Breeds(ctx) }},
		{"SubBreeds", "/api/breed/hound/list", func(ctx context.Context, c *Client) (any, error) { return c.SubBreeds(ctx, "hound") }},
	}
}

func TestRandomImageScenario(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":"https://images.dog.ceo/x.jpg"}`)

	got, err := srv.client().RandomImage(context.Background())
	if err != nil {
		t.Fatalf("RandomImage: %v", err)
	}
	if got != "https://images.dog.ceo/x.jpg" {
		t.Fatalf("RandomImage = %q", got)
	}
	if p := srv.lastPath(); p != "/api/breeds/image/random" {
		t.Fatalf("path = %q", p)
	}
}

func TestBreedsReturnsDirectoryUnchanged(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":{"hound":["afghan","basset"],"pug":[]}}`)

	got, err := srv.client().Breeds(context.Background())
	if err != nil {
		t.Fatalf("Breeds: %v", err)
	}
	want := BreedDirectory{"hound": {"afghan", "basset"}, "pug": {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Breeds mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationsPassMessageThrough(t *testing.T) {
	bodies := map[string]struct {
		body string
		want any
	}{
		"string": {`{"status":"success","message":"https://images.dog.ceo/a.jpg"}`, "https://images.dog.ceo/a.jpg"},
		"list":   {`{"status":"success","message":["https://images.dog.ceo/a.jpg","https://images.dog.ceo/b.jpg"]}`, []string{"https://images.dog.ceo/a.jpg", "https://images.dog.ceo/b.jpg"}},
		"dir":    {`{"status":"success","message":{"hound":["afghan"]}}`, BreedDirectory{"hound": {"afghan"}}},
	}
	shapeOf := map[string]string{
		"RandomImage":            "string",
		"RandomImageByBreed":     "string",
		"RandomImageBySubBreed":  "string",
		"RandomImages":           "list",
		"RandomImagesByBreed":    "list",
		"ImagesByBreed":          "list",
		"RandomImagesBySubBreed": "list",
		"ImagesBySubBreed":       "list",
		"SubBreeds":              "list",
		"Breeds":                 "dir",
	}

	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			tc := bodies[shapeOf[op.name]]
			srv := newCatalogServer(t, http.StatusOK, tc.body)

			got, err := op.call(context.Background(), srv.client())
			if err != nil {
				t.Fatalf("%s: %v", op.name, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("%s mismatch (-want +got):\n%s", op.name, diff)
			}
			if p := srv.lastPath(); p != op.path {
				t.Fatalf("%s path = %q want %q", op.name, p, op.path)
			}
		})
	}
}

func TestOperationsSurfaceAPIErrorMessage(t *testing.T) {
	const msg = "Breed not found (master breed does not exist)"
	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			srv := newCatalogServer(t, http.StatusNotFound, `{"status":"error","message":"`+msg+`","code":404}`)

			_, err := op.call(context.Background(), srv.client())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T %v", err, err)
			}
			if apiErr.Message != msg || err.Error() != msg {
				t.Fatalf("message = %q want %q", apiErr.Message, msg)
			}
			if errors.Unwrap(err) != nil {
				t.Fatalf("API errors should not carry a cause")
			}
		})
	}
}

func TestOperationsWrapTransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	client := New(WithHTTPClient(failingHTTPClient{err: cause}))

	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			_, err := op.call(context.Background(), client)
			if !IsError(err) {
				t.Fatalf("expected *Error, got %T %v", err, err)
			}
			if err.Error() != cause.Error() {
				t.Fatalf("message = %q want %q", err.Error(), cause.Error())
			}
			if !errors.Is(err, cause) {
				t.Fatalf("expected cause to be unwrappable")
			}
		})
	}
}

func TestOperationsWrapInvalidJSON(t *testing.T) {
	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			srv := newCatalogServer(t, http.StatusInternalServerError, `<html>oops</html>`)

			_, err := op.call(context.Background(), srv.client())
			if !IsError(err) {
				t.Fatalf("expected *Error, got %T %v", err, err)
			}
			if !strings.Contains(err.Error(), "invalid character") {
				t.Fatalf("message should describe the decode failure, got %q", err.Error())
			}
		})
	}
}

func TestUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api/"
	srv.Close()

	_, err := New(WithBaseURL(base)).RandomImage(context.Background())
	if !IsError(err) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if err.Error() == "" {
		t.Fatalf("expected a descriptive message")
	}
}

func TestSubBreedsEmptyIsFailure(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":[]}`)

	subs, err := srv.client().SubBreeds(context.Background(), "pug")
	if subs != nil {
		t.Fatalf("expected nil result, got %#v", subs)
	}
	if !IsError(err) || err.Error() != ErrMsgNoSubBreeds {
		t.Fatalf("expected %q, got %v", ErrMsgNoSubBreeds, err)
	}
}

func TestSubBreedsNonEmptyPassesThrough(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":["afghan","basset"]}`)

	subs, err := srv.client().SubBreeds(context.Background(), "hound")
	if err != nil {
		t.Fatalf("SubBreeds: %v", err)
	}
	if diff := cmp.Diff([]string{"afghan", "basset"}, subs); diff != "" {
		t.Fatalf("SubBreeds mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifiersAreTrimmed(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":"https://images.dog.ceo/x.jpg"}`)

	if _, err := srv.client().RandomImageBySubBreed(context.Background(), " hound ", " afghan "); err != nil {
		t.Fatalf("RandomImageBySubBreed: %v", err)
	}
	if p := srv.lastPath(); p != "/api/breed/hound/afghan/images/random" {
		t.Fatalf("path = %q", p)
	}
}

func TestWrongMessageShapeIsFailure(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"success","message":["a","b"]}`)

	_, err := srv.client().RandomImage(context.Background())
	if !IsError(err) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
}

func TestNonStringErrorMessageIsRenderedRaw(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"status":"error","message":{"reason":"x"}}`)

	_, err := srv.client().RandomImage(context.Background())
	if err == nil || err.Error() != `{"reason":"x"}` {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewNormalizesBaseURL(t *testing.T) {
	if got := New().BaseURL(); got != DefaultBaseURL {
		t.Fatalf("default BaseURL = %q", got)
	}
	if got := New(WithBaseURL("http://mirror.local/api")).BaseURL(); got != "http://mirror.local/api/" {
		t.Fatalf("BaseURL = %q", got)
	}
	if got := New(WithBaseURL("   ")).BaseURL(); got != DefaultBaseURL {
		t.Fatalf("blank override should keep default, got %q", got)
	}
}
