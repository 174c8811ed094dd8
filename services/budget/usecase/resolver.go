package usecase

import (
	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
)

// catalogueEntry pairs a rate card with its owning vendor so matches can
// report both.
type catalogueEntry struct {
	vendor *models.Vendor
	card   *models.RateCard
}

// buildCatalogue flattens the approved vendors into a flat card list. The
// vendors arrive in stable creation order and cards in stable item-name
// order, which is what makes resolution deterministic when rates tie.
func buildCatalogue(vendors []*models.Vendor) []catalogueEntry {
	var entries []catalogueEntry
	for _, v := range vendors {
		for i := range v.RateCards {
			entries = append(entries, catalogueEntry{vendor: v, card: &v.RateCards[i]})
		}
	}
	return entries
}

// matchCatalogue finds the rate card for a row. Candidates are narrowed in
// order: vendor hint, exact category tag, item-name containment. Among the
// surviving candidates the lowest rate wins; ties keep listing order.
func matchCatalogue(entries []catalogueEntry, row *models.ImportRow) *catalogueEntry {
	candidates := entries

	if hint := utils.NormalizeCategory(row.VendorHint); hint != "" {
		var hinted []catalogueEntry
		for _, e := range candidates {
			if utils.ContainsFold(e.vendor.Name, hint) {
				hinted = append(hinted, e)
			}
		}
		if len(hinted) > 0 {
			candidates = hinted
		}
	}

	category := utils.NormalizeCategory(row.Category)
	var matched []catalogueEntry
	if category != "" {
		for _, e := range candidates {
			if utils.NormalizeCategory(e.card.CategoryTag) == category {
				matched = append(matched, e)
			}
		}
	}
	if len(matched) == 0 {
		for _, e := range candidates {
			if utils.ContainsFold(e.card.ItemName, row.ItemName) || utils.ContainsFold(row.ItemName, e.card.ItemName) {
				matched = append(matched, e)
			}
		}
	}
	if len(matched) == 0 {
		return nil
	}

	best := matched[0]
	for _, e := range matched[1:] {
		if e.card.Rate < best.card.Rate {
			best = e
		}
	}
	return &best
}

// ResolveLineItems prices the raw rows against the approved vendor
// catalogue and computes the budget totals. A row with no catalogue match
// and no explicit rate fails the whole resolution.
func ResolveLineItems(rows []models.ImportRow, vendors []*models.Vendor, gstRate float64) ([]models.LineItem, models.BudgetTotals, error) {
	entries := buildCatalogue(vendors)

	items := make([]models.LineItem, 0, len(rows))
	var totals models.BudgetTotals

	for i := range rows {
		row := &rows[i]

		quantity := row.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		item := models.LineItem{
			Position: i + 1,
			Category: row.Category,
			ItemName: row.ItemName,
			Unit:     row.Unit,
			Quantity: quantity,
			GSTRate:  gstRate,
		}

		if match := matchCatalogue(entries, row); match != nil {
			vendorID := match.vendor.ID
			item.VendorID = &vendorID
			item.Rate = match.card.Rate
			item.MinQuantity = match.card.MinQuantity
			item.SetupCharges = match.card.SetupCharges
			if item.Category == "" {
				item.Category = match.card.CategoryTag
			}
			if item.Unit == "" {
				item.Unit = match.card.Unit
			}
			// An explicit sheet rate overrides the card rate but keeps
			// the vendor reference and the card's quantity floor.
			if row.HasRate {
				item.Rate = row.Rate
			}
		} else {
			if !row.HasRate {
				return nil, models.BudgetTotals{}, apperrors.Resolution(
					"row %d (%s): no approved vendor rate matches and no explicit rate given", i+1, row.ItemName)
			}
			item.Rate = row.Rate
			item.MinQuantity = 1
		}

		if item.MinQuantity < 1 {
			item.MinQuantity = 1
		}
		if item.Unit == "" {
			item.Unit = "unit"
		}

		billed := item.Quantity
		if item.MinQuantity > billed {
			billed = item.MinQuantity
		}
		item.LineTotal = billed*item.Rate + item.SetupCharges

		totals.Subtotal += item.LineTotal
		items = append(items, item)
	}

	totals.Tax = totals.Subtotal * gstRate
	totals.GrandTotal = totals.Subtotal + totals.Tax
	return items, totals, nil
}

// assignItemIDs stamps fresh IDs and the budget reference on resolved items.
func assignItemIDs(budgetID uuid.UUID, items []models.LineItem) {
	for i := range items {
		items[i].ID = uuid.New()
		items[i].BudgetID = budgetID
	}
}
