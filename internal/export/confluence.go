package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/complykit/trustreport/internal/transport"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
	"github.com/complykit/trustreport/pkg/report"
)

// TableSyncer publishes a reconciled table to an external page keyed by title.
type TableSyncer interface {
	Sync(ctx context.Context, title string, t *report.Table) error
}

// Confluence syncs report tables into existing Confluence pages, replacing
// each page's body with the rendered table.
type Confluence struct {
	http    *transport.Client
	baseURL string
	space   string
}

// NewConfluence creates a Confluence syncer for the given wiki base URL and
// space key, authenticating with basic credentials.
func NewConfluence(baseURL, space, username, password string) *Confluence {
	return &Confluence{
		http:    transport.New(&transport.BasicAuth{Username: username, Password: password}),
		baseURL: baseURL,
		space:   space,
	}
}

// contentPage is the subset of the content API the syncer reads.
type contentPage struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version struct {
		Number int `json:"number"`
	} `json:"version"`
}

type contentSearch struct {
	Results []contentPage `json:"results"`
}

// Sync replaces the body of the page with the given title. The page must
// already exist in the configured space; reports never create pages.
func (c *Confluence) Sync(ctx context.Context, title string, t *report.Table) error {
	page, err := c.findPage(ctx, title)
	if err != nil {
		return err
	}

	update := map[string]any{
		"id":    page.ID,
		"type":  "page",
		"title": title,
		"space": map[string]string{"key": c.space},
		"body": map[string]any{
			"storage": map[string]string{
				"value":          HTMLTable(t),
				"representation": "storage",
			},
		},
		"version": map[string]int{"number": page.Version.Number + 1},
	}

	body, err := json.Marshal(update)
	if err != nil {
		return errors.WrapParse("json", "page update", err)
	}

	endpoint := fmt.Sprintf("%s/rest/api/content/%s", c.baseURL, page.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WrapParse("url", endpoint, err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := transport.CheckStatus(ctx, "confluence", resp); err != nil {
		return err
	}
	transport.Drain(resp)

	logging.Ctx(ctx).Info().
		Str("page_id", page.ID).
		Str("title", title).
		Int("version", page.Version.Number+1).
		Msg("Synced report page")
	return nil
}

// findPage locates the page with the given title in the configured space.
func (c *Confluence) findPage(ctx context.Context, title string) (*contentPage, error) {
	endpoint := fmt.Sprintf("%s/rest/api/content?spaceKey=%s&title=%s&expand=version",
		c.baseURL, url.QueryEscape(c.space), url.QueryEscape(title))

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var search contentSearch
	if err := transport.DecodeJSON(ctx, "confluence", resp, &search); err != nil {
		return nil, err
	}
	if len(search.Results) == 0 {
		return nil, errors.NewNotFoundError("page", title)
	}
	return &search.Results[0], nil
}
