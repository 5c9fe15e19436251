// Package onetrust implements the OneTrust API client: paginated collection
// listing over the two pagination schemes the platform uses, concurrent
// per-entity detail fetches, and assessment scoring.
package onetrust

import (
	"fmt"
	"time"

	"github.com/complykit/trustreport/internal/transport"
	"github.com/complykit/trustreport/pkg/constants"
)

// Microservice names, used in endpoint paths and error classification.
const (
	serviceSCIM       = "scim"
	serviceInventory  = "inventory"
	serviceAssessment = "assessment"
)

// Inventory collection names accepted by the inventory microservice.
const (
	InventoryVendors = "vendors"
	InventoryAssets  = "assets"
)

// Client talks to the OneTrust API.
type Client struct {
	baseURL     string
	version     string
	token       string
	http        *transport.Client
	fanoutLimit int
	timeout     time.Duration
	sleep       func(time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the https://{hostname} base, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithFanoutLimit caps the number of concurrent detail fetches.
func WithFanoutLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.fanoutLimit = n
		}
	}
}

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSleep overrides the rate-limit backoff wait, for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

// WithRetryPolicy overrides the transport retry policy, for tests.
func WithRetryPolicy(p transport.Policy) Option {
	return func(c *Client) { c.http = transport.NewWithPolicy(c.auth(), p) }
}

// New creates a OneTrust client for the given hostname and API version,
// authenticating every request with the static bearer token.
func New(hostname, version, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:     "https://" + hostname,
		version:     version,
		token:       token,
		fanoutLimit: constants.DefaultFanoutLimit,
		sleep:       time.Sleep,
	}
	c.http = transport.New(c.auth())
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}
	return c
}

func (c *Client) auth() transport.Authenticator {
	return &transport.BearerAuth{Token: c.token}
}

func (c *Client) usersURL(startIndex, count int) string {
	return fmt.Sprintf("%s/scim/%s/Users?startIndex=%d&count=%d", c.baseURL, c.version, startIndex, count)
}

func (c *Client) userURL(id string) string {
	return fmt.Sprintf("%s/scim/%s/Users/%s", c.baseURL, c.version, id)
}

func (c *Client) inventoriesURL(kind string, page, size int) string {
	return fmt.Sprintf("%s/inventory/%s/inventories/%s?page=%d&size=%d", c.baseURL, c.version, kind, page, size)
}

func (c *Client) inventoryItemURL(kind, id string) string {
	return fmt.Sprintf("%s/inventory/%s/inventories/%s/%s", c.baseURL, c.version, kind, id)
}

func (c *Client) assessmentsURL(page, size int) string {
	return fmt.Sprintf("%s/assessment/%s/assessments?page=%d&size=%d", c.baseURL, c.version, page, size)
}

func (c *Client) assessmentExportURL(id string) string {
	return fmt.Sprintf("%s/assessment/%s/assessments/%s/export", c.baseURL, c.version, id)
}
