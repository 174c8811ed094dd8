package usecase

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// columnAliases maps the header names agencies actually put on element
// sheets onto canonical column keys.
var columnAliases = map[string]string{
	"category":         "category",
	"service category": "category",
	"item":             "item_name",
	"item name":        "item_name",
	"element":          "item_name",
	"description":      "item_name",
	"vendor":           "vendor",
	"preferred vendor": "vendor",
	"unit":             "unit",
	"uom":              "unit",
	"rate":             "rate",
	"unit rate":        "rate",
	"price":            "rate",
	"quantity":         "quantity",
	"qty":              "quantity",
	"nos":              "quantity",
}

// ParseElementSheet reads the first worksheet of an xlsx element sheet into
// raw import rows. The header row is matched against known column aliases;
// rows without an item name are skipped.
func ParseElementSheet(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "failed to read sheet: %v", err)
	}
	if len(cells) < 2 {
		return nil, apperrors.Validation(apperrors.CodeEmptyBudget, "sheet has no data rows")
	}

	columns := map[string]int{}
	for i, header := range cells[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := columnAliases[key]; ok {
			if _, taken := columns[canonical]; !taken {
				columns[canonical] = i
			}
		}
	}
	if _, ok := columns["item_name"]; !ok {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "sheet has no item column")
	}

	var rows []models.ImportRow
	for _, cellRow := range cells[1:] {
		itemName := strings.TrimSpace(cellAt(cellRow, columns, "item_name"))
		if itemName == "" {
			continue
		}

		row := models.ImportRow{
			Category:   strings.TrimSpace(cellAt(cellRow, columns, "category")),
			ItemName:   itemName,
			VendorHint: strings.TrimSpace(cellAt(cellRow, columns, "vendor")),
			Unit:       strings.TrimSpace(cellAt(cellRow, columns, "unit")),
		}

		if raw := strings.TrimSpace(cellAt(cellRow, columns, "rate")); raw != "" {
			if rate, err := parseNumber(raw); err == nil && rate > 0 {
				row.Rate = rate
				row.HasRate = true
			}
		}
		if raw := strings.TrimSpace(cellAt(cellRow, columns, "quantity")); raw != "" {
			if qty, err := parseNumber(raw); err == nil {
				row.Quantity = qty
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func cellAt(row []string, columns map[string]int, key string) string {
	i, ok := columns[key]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumber tolerates currency formatting like "1,50,000" or "Rs 5000".
func parseNumber(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	return strconv.ParseFloat(cleaned, 64)
}
