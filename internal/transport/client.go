// Package transport provides the authenticated HTTP layer shared by the
// OneTrust client and the exporters: a retrying GET client, response status
// classification, and rate-limit header handling.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/complykit/trustreport/pkg/constants"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication and a bounded
// retry policy for transport-level failures.
type Client struct {
	http  *http.Client
	auth  Authenticator
	retry Policy
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator) *Client {
	return &Client{
		http:  &http.Client{Timeout: DefaultHTTPTimeout},
		auth:  auth,
		retry: DefaultPolicy(),
	}
}

// NewWithPolicy creates a transport client with an explicit retry policy.
func NewWithPolicy(auth Authenticator, policy Policy) *Client {
	c := New(auth)
	c.retry = policy
	return c
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// Do performs an HTTP request with authentication applied and transient
// failures retried. A response with a non-success status is returned as-is;
// classifying it is the caller's responsibility.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.auth != nil {
		c.auth.Apply(req)
	}

	req.Header.Set("accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}

	var resp *http.Response
	err := c.retry.Do(ctx, req.Method+" "+req.URL.Path, func() error {
		var doErr error
		resp, doErr = c.http.Do(req.Clone(ctx)) //nolint:bodyclose // closed by caller
		return doErr
	})
	if err != nil {
		return nil, &errors.FetchError{
			Endpoint: req.URL.String(),
			Attempts: c.retry.MaxAttempts,
			Err:      err,
		}
	}
	return resp, nil
}

// Get performs a GET request against url.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	logging.Ctx(ctx).Debug().Str("url", url).Msg("Sending request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapParse("url", url, err)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Msg("Received response")
	return resp, nil
}
