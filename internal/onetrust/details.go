package onetrust

import (
	"context"
	"strings"

	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
	"github.com/complykit/trustreport/pkg/report"
)

// fetchUserName resolves one user ID to its userName. Users that no longer
// exist or carry no userName are anticipated misses, not failures.
func (c *Client) fetchUserName(ctx context.Context, id string) (*report.User, error) {
	var user report.User
	err := c.fetchJSON(ctx, serviceSCIM, c.userURL(id), &user)
	if errors.IsNotFound(err) {
		logging.Ctx(ctx).Warn().Str("user_id", id).Msg("userName not found for userID")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.UserName == "" {
		logging.Ctx(ctx).Warn().Str("user_id", id).Msg("userName not found for userID")
		return nil, nil
	}
	user.ID = id
	return &user, nil
}

// UserDirectory resolves the given user IDs to userNames concurrently and
// returns the ID-to-userName directory. IDs that could not be resolved are
// simply absent from the result.
func (c *Client) UserDirectory(ctx context.Context, ids []string) (report.Directory, error) {
	users, err := fanOut(ctx, ids, c.fanoutLimit, c.fetchUserName)
	if err != nil {
		return nil, err
	}

	dir := make(report.Directory, len(users))
	for _, u := range users {
		if u != nil {
			dir[u.ID] = u.UserName
		}
	}
	return dir, nil
}

// assetDetail projects the description field of an asset detail record.
type assetDetail struct {
	Data struct {
		Description *string `json:"description"`
	} `json:"data"`
}

// fetchDescription resolves one asset ID to its description. A missing asset
// is an anticipated miss; a present asset with a null description resolves to
// the "N/A" placeholder.
func (c *Client) fetchDescription(ctx context.Context, id string) (*report.AssetInfo, error) {
	var detail assetDetail
	err := c.fetchJSON(ctx, serviceInventory, c.inventoryItemURL(InventoryAssets, id), &detail)
	if errors.IsNotFound(err) {
		logging.Ctx(ctx).Warn().Str("asset_id", id).Msg("inventory not found for assetID")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	description := report.ValueNA
	if detail.Data.Description != nil {
		description = *detail.Data.Description
	}
	return &report.AssetInfo{
		EntityID:    id,
		Description: description,
		Ticket:      ticketNumber(description),
	}, nil
}

// AssetDescriptions resolves the given asset IDs to their descriptions
// concurrently. Assets that could not be resolved are dropped.
func (c *Client) AssetDescriptions(ctx context.Context, ids []string) ([]report.AssetInfo, error) {
	resolved, err := fanOut(ctx, ids, c.fanoutLimit, c.fetchDescription)
	if err != nil {
		return nil, err
	}

	infos := make([]report.AssetInfo, 0, len(resolved))
	for _, info := range resolved {
		if info != nil {
			infos = append(infos, *info)
		}
	}
	return infos, nil
}

// ticketNumber extracts the trailing path segment of a ticket URL, so a
// description holding "https://tracker/browse/SW-123" yields "SW-123".
func ticketNumber(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
