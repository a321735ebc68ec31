package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	vendorID := uuid.New()

	t.Run("creates an active draft", func(t *testing.T) {
		p, err := NewProduct(vendorID, "Cold Pressed Coconut Oil", decimal.NewFromInt(450), ProductTypeOrganic)
		require.NoError(t, err)

		assert.Equal(t, ApprovalStatusDraft, p.ApprovalStatus)
		assert.True(t, p.IsActive)
		assert.Contains(t, p.Slug, "cold-pressed-coconut-oil")

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewProduct(vendorID, "Free Sample", decimal.Zero, ProductTypeNatural)
		assert.Error(t, err)
		_, err = NewProduct(vendorID, "Refund", decimal.NewFromInt(-1), ProductTypeNatural)
		assert.Error(t, err)
	})

	t.Run("rejects unknown product type", func(t *testing.T) {
		_, err := NewProduct(vendorID, "Widget", decimal.NewFromInt(10), "SYNTHETIC")
		assert.Error(t, err)
	})
}

func TestProductReviewWorkflow(t *testing.T) {
	p, err := NewProduct(uuid.New(), "Raw Forest Honey", decimal.NewFromInt(320), ProductTypeNatural)
	require.NoError(t, err)

	assert.Error(t, p.Publish(), "draft cannot be published directly")

	require.NoError(t, p.SubmitForReview())
	assert.Equal(t, ApprovalStatusPendingReview, p.ApprovalStatus)

	require.NoError(t, p.RejectListing())
	assert.Equal(t, ApprovalStatusRejected, p.ApprovalStatus)

	// rejected listings may be resubmitted
	require.NoError(t, p.SubmitForReview())
	require.NoError(t, p.Publish())
	assert.Equal(t, ApprovalStatusPublished, p.ApprovalStatus)

	assert.Error(t, p.SubmitForReview(), "published products stay published")
}

func TestProductSoftDelete(t *testing.T) {
	p, _ := NewProduct(uuid.New(), "Bamboo Toothbrush", decimal.NewFromInt(90), ProductTypeEcoFriendly)

	assert.True(t, p.Orderable())
	p.Deactivate()
	assert.False(t, p.IsActive)
	assert.False(t, p.Orderable())
	p.Activate()
	assert.True(t, p.Orderable())
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Cold Pressed Oil":    "cold-pressed-oil",
		"  A2 Ghee (500ml) ":  "a2-ghee-500ml",
		"--weird--input--":    "weird-input",
		"ALL CAPS":            "all-caps",
		"नारियल Coconut":      "coconut",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestCategoryParent(t *testing.T) {
	c, err := NewCategory("Oils", "", "")
	require.NoError(t, err)
	assert.Equal(t, "oils", c.Slug)

	other := uuid.New()
	require.NoError(t, c.SetParent(&other))
	assert.Equal(t, other, *c.ParentID)

	err = c.SetParent(&c.ID)
	require.Error(t, err)
}
