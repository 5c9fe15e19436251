package report

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vendorHeaders is the fixed column projection of the vendor report.
var vendorHeaders = []string{
	"ID",
	"Vendor Name",
	"Business Owner",
	"Organization",
	"Description",
	"Vendor Category",
	"Website",
	"Jira Ticket",
	"Created Date",
	"Last Updated",
}

// Vendors reconciles raw vendor records against the resolved user directory
// for the requested status view. Owners that never resolved (including owners
// defaulted to the not-set sentinel, which by construction has no directory
// entry) drop their row via the inner join; unassigned vendors are therefore
// excluded from the report rather than shown with a blank owner.
func Vendors(vendors []Vendor, users Directory, status VendorStatus) *Table {
	lowered := lowerValues(users)
	t := NewTable(vendorHeaders)

	for _, v := range vendors {
		owner := resolveRef(v.Owner, OwnerNotSet)
		category := resolveValueRef(v.Category, CategoryNotSet)
		vendorID := resolveString(v.VendorID, VendorIDNotSet)

		if !vendorInView(v, status) {
			continue
		}

		userName, ok := lowered.Resolve(owner)
		if !ok {
			continue
		}

		t.Append(
			v.Number,
			v.Name,
			userName,
			v.Organization.Value,
			v.Description,
			category,
			v.Website,
			vendorID,
			dateOnly(v.CreatedDate),
			dateOnly(v.UpdatedDate),
		)
	}
	return t
}

// OwnerIDs collects the distinct business owner IDs referenced by vendors, so
// only referenced users need a directory lookup.
func OwnerIDs(vendors []Vendor) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, v := range vendors {
		if len(v.Owner) == 0 {
			continue
		}
		id := v.Owner[0].ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// vendorInView applies the status predicate of the requested view.
func vendorInView(v Vendor, status VendorStatus) bool {
	stage := v.WorkflowStage.Stage.Value
	switch status {
	case VendorInProgress:
		return stage == "Under Evaluation" || stage == "In Review"
	case VendorRejectedTerminated:
		return stage == "Rejected" || stage == "Terminated"
	default: // approved
		return v.Status.Key == "active" && stage == "Live"
	}
}

// lowerValues lower-cases directory values so the owner join and the rendered
// owner column are case-insensitive with respect to how usernames were entered.
func lowerValues(d Directory) Directory {
	lower := cases.Lower(language.Und)
	out := make(Directory, len(d))
	for id, value := range d {
		out[id] = lower.String(value)
	}
	return out
}
