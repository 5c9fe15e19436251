package report

// assetHeaders is the fixed column projection of the asset report.
var assetHeaders = []string{
	"Asset Name",
	"Technical Owner",
	"Organization",
	"Description",
	"Asset Type",
	"MS Graph API Annual Permissions Review",
}

// TechnicalOwnerIDs collects the distinct technical owner IDs referenced by
// assets.
func TechnicalOwnerIDs(assets []Asset) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, a := range assets {
		if len(a.TechnicalOwner) == 0 {
			continue
		}
		id := a.TechnicalOwner[0].ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Assets reconciles raw asset records against the resolved user directory.
// Only active or pending assets whose annual permissions review flag is "Yes"
// are in scope; assets whose technical owner never resolved are dropped by
// the inner join.
func Assets(assets []Asset, users Directory) *Table {
	lowered := lowerValues(users)
	t := NewTable(assetHeaders)

	for _, a := range assets {
		owner := resolveRef(a.TechnicalOwner, TechnicalOwnerNotSet)
		description := resolveString(a.Description, AssetDescriptionNotSet)
		assetType := resolveValueRef(a.Type, AssetTypeNotSet)
		review := resolveValueRef(a.GraphReview, ReviewNotSet)

		if a.Status.Key != "active" && a.Status.Key != "pending" {
			continue
		}
		if review != "Yes" {
			continue
		}

		userName, ok := lowered.Resolve(owner)
		if !ok {
			continue
		}

		t.Append(
			a.Name,
			userName,
			a.Organization.Value,
			description,
			assetType,
			review,
		)
	}
	return t
}
