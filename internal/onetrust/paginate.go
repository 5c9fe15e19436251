package onetrust

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/complykit/trustreport/internal/transport"
	"github.com/complykit/trustreport/pkg/constants"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
	"github.com/complykit/trustreport/pkg/report"
)

// pageMeta carries the pagination counters of a page/size envelope.
type pageMeta struct {
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}

// inventoryEnvelope is one page of an inventory collection.
type inventoryEnvelope struct {
	Data []json.RawMessage `json:"data"`
	Meta struct {
		Page pageMeta `json:"page"`
	} `json:"meta"`
}

// assessmentEnvelope is one page of the assessment listing, which nests its
// items under "content" and its counters at the top level.
type assessmentEnvelope struct {
	Content []json.RawMessage `json:"content"`
	Page    pageMeta          `json:"page"`
}

// scimEnvelope is one page of the SCIM user directory.
type scimEnvelope struct {
	Resources    []json.RawMessage `json:"Resources"`
	ItemsPerPage int               `json:"itemsPerPage"`
	TotalResults int               `json:"totalResults"`
}

// fetchJSON GETs url, looping on 429 with the server-directed backoff, then
// classifies and decodes the first non-429 response into target. The 429 loop
// is unbounded and never consumes the transport retry budget.
func (c *Client) fetchJSON(ctx context.Context, service, url string, target any) error {
	ctx = logging.WithService(ctx, service)
	for {
		resp, err := c.http.Get(ctx, url)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return transport.DecodeJSON(ctx, service, resp, target)
		}

		logging.Ctx(ctx).Warn().Msg("Rate limit exceeded. Retrying after delay...")
		delay := transport.RetryAfter(ctx, resp)
		transport.Drain(resp)
		c.sleep(delay)
	}
}

// ListUsers pages through the SCIM user directory with the offset/count
// strategy: a 1-based startIndex advanced by each page's actual item count,
// until the server returns a short page.
func (c *Client) ListUsers(ctx context.Context) ([]report.User, error) {
	var raw []json.RawMessage
	var total int
	index := constants.UserInitialIndex

	for {
		var env scimEnvelope
		url := c.usersURL(index, constants.UserPageSize)
		if err := c.fetchJSON(ctx, serviceSCIM, url, &env); err != nil {
			return nil, err
		}
		raw = append(raw, env.Resources...)
		total = env.TotalResults

		fetched := env.ItemsPerPage
		logging.Ctx(ctx).Info().
			Str("url", url).
			Int("from", index).
			Int("to", index+fetched-1).
			Msg("Fetched user page")

		if fetched < constants.UserPageSize {
			break
		}
		index += fetched
	}

	if total > 0 && len(raw) != total {
		logging.Ctx(ctx).Warn().
			Int("fetched", len(raw)).
			Int("total", total).
			Msg("User count does not match server-reported total")
	}

	return decodeItems[report.User](raw, serviceSCIM)
}

// listInventory pages through one inventory collection with the page/size
// strategy: a 0-based page index advanced by one, until the reported total
// page count is reached.
func (c *Client) listInventory(ctx context.Context, kind string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	page := constants.InventoryInitialPage
	size := constants.InventoryPageSize

	for {
		var env inventoryEnvelope
		url := c.inventoriesURL(kind, page, size)
		if err := c.fetchJSON(ctx, serviceInventory, url, &env); err != nil {
			return nil, err
		}
		items = append(items, env.Data...)

		total := env.Meta.Page.TotalElements
		logging.Ctx(ctx).Info().
			Str("url", url).
			Int("from", page*size+1).
			Int("to", min(size*(page+1), total)).
			Msg("Fetched inventory page")

		page++
		if page >= env.Meta.Page.TotalPages {
			if total > 0 && len(items) != total {
				logging.Ctx(ctx).Warn().
					Int("fetched", len(items)).
					Int("total", total).
					Msg("Item count does not match server-reported total")
			}
			return items, nil
		}
	}
}

// ListVendors retrieves every vendor inventory record.
func (c *Client) ListVendors(ctx context.Context) ([]report.Vendor, error) {
	raw, err := c.listInventory(ctx, InventoryVendors)
	if err != nil {
		return nil, err
	}
	return decodeItems[report.Vendor](raw, serviceInventory)
}

// ListAssets retrieves every asset inventory record.
func (c *Client) ListAssets(ctx context.Context) ([]report.Asset, error) {
	raw, err := c.listInventory(ctx, InventoryAssets)
	if err != nil {
		return nil, err
	}
	return decodeItems[report.Asset](raw, serviceInventory)
}

// ListAssessments retrieves every assessment summary.
func (c *Client) ListAssessments(ctx context.Context) ([]report.AssessmentSummary, error) {
	var items []json.RawMessage
	page := constants.InventoryInitialPage
	size := constants.InventoryPageSize

	for {
		var env assessmentEnvelope
		url := c.assessmentsURL(page, size)
		if err := c.fetchJSON(ctx, serviceAssessment, url, &env); err != nil {
			return nil, err
		}
		items = append(items, env.Content...)

		logging.Ctx(ctx).Info().
			Str("url", url).
			Int("from", page*size+1).
			Int("to", min(size*(page+1), env.Page.TotalElements)).
			Msg("Fetched assessment page")

		page++
		if page >= env.Page.TotalPages {
			break
		}
	}

	return decodeItems[report.AssessmentSummary](items, serviceAssessment)
}

// decodeItems explodes raw envelope items into typed records.
func decodeItems[T any](raw []json.RawMessage, service string) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, errors.WrapParse("json", service+" item", err)
		}
		items = append(items, item)
	}
	return items, nil
}
