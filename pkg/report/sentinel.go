package report

import (
	"strings"
	"time"

	"github.com/complykit/trustreport/pkg/constants"
)

// Sentinel values substituted for absent relationship and categorical fields
// before extraction, so no pipeline step ever observes a raw absent value.
const (
	// OwnerNotSet replaces an absent vendor business owner reference.
	OwnerNotSet = "owner_id_not_set"

	// TechnicalOwnerNotSet replaces an absent asset technical owner reference.
	TechnicalOwnerNotSet = "technical_owner_id_not_set"

	// CategoryNotSet replaces an absent vendor category custom field.
	CategoryNotSet = "vendor_category_not_set"

	// VendorIDNotSet replaces an absent vendor Jira ticket reference.
	VendorIDNotSet = "Vendor ID Not Set"

	// AssetDescriptionNotSet replaces an absent asset description.
	AssetDescriptionNotSet = "asset_description_not_set"

	// AssetTypeNotSet replaces an absent asset type reference.
	AssetTypeNotSet = "asset_type_not_set"

	// ReviewNotSet replaces an absent annual-permissions-review custom field.
	ReviewNotSet = "not_set"

	// ValueNA marks a value the server delivered as null.
	ValueNA = "N/A"
)

// resolveRef extracts the ID of the first reference, substituting def when the
// relationship array is absent or empty.
func resolveRef(refs []Ref, def string) string {
	if len(refs) == 0 {
		return def
	}
	return refs[0].ID
}

// resolveValueRef extracts the display value of the first reference,
// substituting def when the array is absent or empty.
func resolveValueRef(refs []ValueRef, def string) string {
	if len(refs) == 0 {
		return def
	}
	return refs[0].Value
}

// resolveString substitutes def for a null string field.
func resolveString(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// dateOnly reduces a server timestamp to its calendar date. Unparseable
// values are coerced: the text before any 'T' separator is kept, and empty
// input stays empty.
func dateOnly(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(constants.TimeFormatDate)
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}

// laterDate returns the later of two calendar-date strings, coercing values
// that do not parse (such as "N/A") to the zero date. Both unparseable yields
// the empty string.
func laterDate(a, b string) string {
	ta, errA := time.Parse(constants.TimeFormatDate, a)
	tb, errB := time.Parse(constants.TimeFormatDate, b)
	switch {
	case errA != nil && errB != nil:
		return ""
	case errA != nil:
		return tb.Format(constants.TimeFormatDate)
	case errB != nil:
		return ta.Format(constants.TimeFormatDate)
	case tb.After(ta):
		return tb.Format(constants.TimeFormatDate)
	default:
		return ta.Format(constants.TimeFormatDate)
	}
}
