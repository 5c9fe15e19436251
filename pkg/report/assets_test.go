package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewedAsset(name, owner string) Asset {
	description := name + " service"
	return Asset{
		Name:           name,
		TechnicalOwner: []Ref{{ID: owner}},
		Organization:   ValueField{Value: "Engineering"},
		Description:    &description,
		Status:         StatusField{Key: "active"},
		Type:           []ValueRef{{Value: "Application"}},
		GraphReview:    []ValueRef{{Value: "Yes"}},
	}
}

func TestAssets_FiltersByStatusAndReviewFlag(t *testing.T) {
	active := reviewedAsset("alpha", "u1")

	pending := reviewedAsset("beta", "u1")
	pending.Status.Key = "pending"

	retired := reviewedAsset("gamma", "u1")
	retired.Status.Key = "retired"

	notReviewed := reviewedAsset("delta", "u1")
	notReviewed.GraphReview = []ValueRef{{Value: "No"}}

	noFlag := reviewedAsset("epsilon", "u1")
	noFlag.GraphReview = nil

	users := Directory{"u1": "alice"}
	table := Assets([]Asset{active, pending, retired, notReviewed, noFlag}, users)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "alpha", table.Rows[0][0])
	assert.Equal(t, "beta", table.Rows[1][0])
}

func TestAssets_UnresolvedOwnerDropsRow(t *testing.T) {
	known := reviewedAsset("alpha", "u1")
	unknown := reviewedAsset("beta", "u-missing")

	table := Assets([]Asset{known, unknown}, Directory{"u1": "alice"})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "alpha", table.Rows[0][0])
}

func TestAssets_SentinelDefaults(t *testing.T) {
	a := reviewedAsset("alpha", "u1")
	a.Description = nil
	a.Type = nil

	table := Assets([]Asset{a}, Directory{"u1": "alice"})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, AssetDescriptionNotSet, table.Rows[0][3])
	assert.Equal(t, AssetTypeNotSet, table.Rows[0][4])
}

func TestAssets_OwnerColumnIsLowercased(t *testing.T) {
	a := reviewedAsset("alpha", "u1")
	table := Assets([]Asset{a}, Directory{"u1": "Alice.Smith"})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "alice.smith", table.Rows[0][1])
}

func TestTechnicalOwnerIDs_Distinct(t *testing.T) {
	a := reviewedAsset("alpha", "u1")
	b := reviewedAsset("beta", "u1")
	c := reviewedAsset("gamma", "u2")
	d := reviewedAsset("delta", "")
	d.TechnicalOwner = nil

	assert.Equal(t, []string{"u1", "u2"}, TechnicalOwnerIDs([]Asset{a, b, c, d}))
}
