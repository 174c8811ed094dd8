package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

func approvedVendor(name, category string, cards ...models.RateCard) *models.Vendor {
	v := &models.Vendor{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Status:   models.VendorApproved,
	}
	for i := range cards {
		cards[i].VendorID = v.ID
		if cards[i].ID == uuid.Nil {
			cards[i].ID = uuid.New()
		}
		if cards[i].MinQuantity == 0 {
			cards[i].MinQuantity = 1
		}
		if cards[i].Unit == "" {
			cards[i].Unit = "unit"
		}
	}
	v.RateCards = cards
	return v
}

func TestResolveLineItems_CategoryMatchWithSetupCharges(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("StageCraft", "fabrication", models.RateCard{
			ItemName:     "Octanorm stall 3x3",
			CategoryTag:  "fabrication",
			Rate:         95000,
			SetupCharges: 5000,
		}),
	}
	rows := []models.ImportRow{
		{Category: "Fabrication", ItemName: "Stall setup", Quantity: 1},
	}

	items, totals, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, vendors[0].ID, *items[0].VendorID)
	assert.Equal(t, 100000.0, items[0].LineTotal)
	assert.Equal(t, 100000.0, totals.Subtotal)
	assert.Equal(t, 18000.0, totals.Tax)
	assert.Equal(t, 118000.0, totals.GrandTotal)
}

func TestResolveLineItems_MinimumQuantityFloor(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("SoundWorks", "audio", models.RateCard{
			ItemName:    "Speaker pair",
			CategoryTag: "audio",
			Rate:        2000,
			MinQuantity: 4,
		}),
	}
	rows := []models.ImportRow{
		{Category: "audio", ItemName: "Speakers", Quantity: 2},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	// Billed at the minimum of 4 even though only 2 were requested.
	assert.Equal(t, 8000.0, items[0].LineTotal)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 4.0, items[0].MinQuantity)
}

func TestResolveLineItems_LowestRateWinsAcrossVendors(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("Pricey AV", "audio", models.RateCard{
			ItemName:    "LED wall per sqft",
			CategoryTag: "audio",
			Rate:        450,
		}),
		approvedVendor("Budget AV", "audio", models.RateCard{
			ItemName:    "LED wall per sqft",
			CategoryTag: "audio",
			Rate:        300,
		}),
	}
	rows := []models.ImportRow{
		{Category: "audio", ItemName: "LED wall", Quantity: 100},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	assert.Equal(t, vendors[1].ID, *items[0].VendorID)
	assert.Equal(t, 30000.0, items[0].LineTotal)
}

func TestResolveLineItems_RateTieKeepsListingOrder(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("First Vendor", "audio", models.RateCard{
			ItemName:    "Wireless mic",
			CategoryTag: "audio",
			Rate:        800,
		}),
		approvedVendor("Second Vendor", "audio", models.RateCard{
			ItemName:    "Wireless mic",
			CategoryTag: "audio",
			Rate:        800,
		}),
	}
	rows := []models.ImportRow{
		{Category: "audio", ItemName: "Mics", Quantity: 2},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	assert.Equal(t, vendors[0].ID, *items[0].VendorID)
}

func TestResolveLineItems_ItemNameContainmentFallback(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("PrintHub", "printing", models.RateCard{
			ItemName:    "Flex banner printing",
			CategoryTag: "printing",
			Rate:        25,
		}),
	}
	rows := []models.ImportRow{
		// Category does not match any tag, falls back to item-name match.
		{Category: "branding", ItemName: "flex banner", Quantity: 200},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	assert.Equal(t, vendors[0].ID, *items[0].VendorID)
	assert.Equal(t, 5000.0, items[0].LineTotal)
}

func TestResolveLineItems_VendorHintNarrowsCandidates(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("Cheap Decor", "decor", models.RateCard{
			ItemName:    "Floral arch",
			CategoryTag: "decor",
			Rate:        4000,
		}),
		approvedVendor("Premium Decor", "decor", models.RateCard{
			ItemName:    "Floral arch",
			CategoryTag: "decor",
			Rate:        9000,
		}),
	}
	rows := []models.ImportRow{
		{Category: "decor", ItemName: "Arch", VendorHint: "premium", Quantity: 1},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	assert.Equal(t, vendors[1].ID, *items[0].VendorID)
}

func TestResolveLineItems_ExplicitRateWithoutMatch(t *testing.T) {
	rows := []models.ImportRow{
		{Category: "misc", ItemName: "Courier charges", Rate: 1500, HasRate: true, Quantity: 1},
	}

	items, totals, err := ResolveLineItems(rows, nil, 0.18)

	require.NoError(t, err)
	assert.Nil(t, items[0].VendorID)
	assert.Equal(t, 1500.0, items[0].LineTotal)
	assert.Equal(t, 1500.0, totals.Subtotal)
}

func TestResolveLineItems_ExplicitRateOverridesCardRate(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("StageCraft", "fabrication", models.RateCard{
			ItemName:    "Podium",
			CategoryTag: "fabrication",
			Rate:        12000,
			MinQuantity: 1,
		}),
	}
	rows := []models.ImportRow{
		{Category: "fabrication", ItemName: "Podium", Rate: 10000, HasRate: true, Quantity: 1},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.NoError(t, err)
	// Negotiated rate wins but the vendor reference is kept.
	assert.Equal(t, vendors[0].ID, *items[0].VendorID)
	assert.Equal(t, 10000.0, items[0].Rate)
}

func TestResolveLineItems_UnresolvedRowFailsWholeImport(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("StageCraft", "fabrication", models.RateCard{
			ItemName:    "Stall",
			CategoryTag: "fabrication",
			Rate:        95000,
		}),
	}
	rows := []models.ImportRow{
		{Category: "fabrication", ItemName: "Stall", Quantity: 1},
		{Category: "catering", ItemName: "High tea", Quantity: 50},
	}

	items, _, err := ResolveLineItems(rows, vendors, 0.18)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnresolvedRateItem))
	assert.Nil(t, items)
}

func TestResolveLineItems_ZeroQuantityDefaultsToOne(t *testing.T) {
	rows := []models.ImportRow{
		{ItemName: "Misc", Rate: 500, HasRate: true},
	}

	items, _, err := ResolveLineItems(rows, nil, 0.18)

	require.NoError(t, err)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, 500.0, items[0].LineTotal)
}

func TestResolveLineItems_Deterministic(t *testing.T) {
	vendors := []*models.Vendor{
		approvedVendor("A", "audio",
			models.RateCard{ItemName: "Mic", CategoryTag: "audio", Rate: 800},
			models.RateCard{ItemName: "Speaker", CategoryTag: "audio", Rate: 2000},
		),
		approvedVendor("B", "audio",
			models.RateCard{ItemName: "Mic", CategoryTag: "audio", Rate: 800},
		),
	}
	rows := []models.ImportRow{
		{Category: "audio", ItemName: "Mic", Quantity: 3},
		{Category: "audio", ItemName: "Speaker", Quantity: 2},
	}

	first, firstTotals, err := ResolveLineItems(rows, vendors, 0.18)
	require.NoError(t, err)
	second, secondTotals, err := ResolveLineItems(rows, vendors, 0.18)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].VendorID, second[i].VendorID)
		assert.Equal(t, first[i].LineTotal, second[i].LineTotal)
	}
	assert.Equal(t, firstTotals, secondTotals)
}
