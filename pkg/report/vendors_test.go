package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedVendor(name, owner string) Vendor {
	return Vendor{
		Number:       "INV-" + name,
		Name:         name,
		Description:  name + " description",
		Owner:        []Ref{{ID: owner}},
		Organization: ValueField{Value: "IT"},
		Status:       StatusField{Key: "active"},
		WorkflowStage: WorkflowStage{
			Stage: ValueField{Value: "Live"},
		},
		Category:    []ValueRef{{Value: "SaaS"}},
		Website:     "https://" + name + ".example.com",
		CreatedDate: "2026-01-15T09:00:00Z",
		UpdatedDate: "2026-02-20T09:00:00Z",
	}
}

func TestVendors_ApprovedView(t *testing.T) {
	vendors := []Vendor{
		approvedVendor("acme", "u1"),
		func() Vendor {
			v := approvedVendor("beta", "u2")
			v.WorkflowStage.Stage.Value = "Under Evaluation"
			return v
		}(),
	}
	users := Directory{"u1": "Alice.Smith", "u2": "Bob.Jones"}

	table := Vendors(vendors, users, VendorApproved)
	require.Equal(t, 1, table.Len())

	row := table.Rows[0]
	assert.Equal(t, "INV-acme", row[0])
	assert.Equal(t, "acme", row[1])
	assert.Equal(t, "alice.smith", row[2])
	assert.Equal(t, "IT", row[3])
	assert.Equal(t, "SaaS", row[5])
	assert.Equal(t, "2026-01-15", row[8])
	assert.Equal(t, "2026-02-20", row[9])
}

func TestVendors_InProgressView(t *testing.T) {
	stages := []string{"Under Evaluation", "In Review", "Live", "Rejected"}
	var vendors []Vendor
	for i, stage := range stages {
		v := approvedVendor(string(rune('a'+i)), "u1")
		v.WorkflowStage.Stage.Value = stage
		vendors = append(vendors, v)
	}
	users := Directory{"u1": "alice"}

	table := Vendors(vendors, users, VendorInProgress)
	assert.Equal(t, 2, table.Len())
}

func TestVendors_RejectedView(t *testing.T) {
	stages := []string{"Rejected", "Terminated", "Live"}
	var vendors []Vendor
	for i, stage := range stages {
		v := approvedVendor(string(rune('a'+i)), "u1")
		v.WorkflowStage.Stage.Value = stage
		vendors = append(vendors, v)
	}
	users := Directory{"u1": "alice"}

	table := Vendors(vendors, users, VendorRejectedTerminated)
	assert.Equal(t, 2, table.Len())
}

func TestVendors_UnresolvedOwnerDropsRow(t *testing.T) {
	withOwner := approvedVendor("acme", "u1")
	unknownOwner := approvedVendor("beta", "u-unknown")
	noOwner := approvedVendor("gamma", "")
	noOwner.Owner = nil

	users := Directory{"u1": "alice"}

	table := Vendors([]Vendor{withOwner, unknownOwner, noOwner}, users, VendorApproved)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "acme", table.Rows[0][1])
}

func TestVendors_SentinelDefaults(t *testing.T) {
	v := approvedVendor("acme", "u1")
	v.Category = nil
	v.VendorID = nil

	table := Vendors([]Vendor{v}, Directory{"u1": "alice"}, VendorApproved)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, CategoryNotSet, table.Rows[0][5])
	assert.Equal(t, VendorIDNotSet, table.Rows[0][7])
}

func TestVendors_EmptyInputYieldsEmptyTable(t *testing.T) {
	table := Vendors(nil, Directory{}, VendorApproved)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, vendorHeaders, table.Headers)
}

func TestOwnerIDs_Distinct(t *testing.T) {
	vendors := []Vendor{
		approvedVendor("a", "u1"),
		approvedVendor("b", "u1"),
		approvedVendor("c", "u2"),
		func() Vendor {
			v := approvedVendor("d", "")
			v.Owner = nil
			return v
		}(),
	}
	assert.Equal(t, []string{"u1", "u2"}, OwnerIDs(vendors))
}
