package inventory

import "github.com/tidwall/gjson"

// Attributes flattens the latest snapshot into the attribute map exposed by
// the entity detail endpoint. Prices are formatted with FormatPrice; fields
// missing from the snapshot come out as nil.
func (e *LocalEntity) Attributes() map[string]any {
	raw := e.Item.Raw

	salePrices := make([]string, 0, len(e.Item.SalePrices))
	for _, sp := range e.Item.SalePrices {
		salePrices = append(salePrices, FormatPrice(sp.Value))
	}

	var stock any
	if e.Quantity != nil {
		stock = *e.Quantity
	}

	return map[string]any{
		"id":                  e.Item.ID,
		"accountId":           gjson.Get(raw, "accountId").Value(),
		"shared":              gjson.Get(raw, "shared").Value(),
		"updated":             gjson.Get(raw, "updated").Value(),
		"name":                e.Item.Name,
		"description":         gjson.Get(raw, "description").Value(),
		"code":                e.Item.Code,
		"externalCode":        e.Item.ExternalCode,
		"archived":            e.Item.Archived,
		"pathName":            e.Item.PathName,
		"minPrice":            FormatPrice(minorOrZero(e.Item.MinPrice)),
		"salePrices":          salePrices,
		"buyPrice":            FormatPrice(minorOrZero(e.Item.BuyPrice)),
		"discountProhibited":  gjson.Get(raw, "discountProhibited").Value(),
		"weighed":             gjson.Get(raw, "weighed").Value(),
		"weight":              e.Item.Weight,
		"volume":              e.Item.Volume,
		"stock":               stock,
		"article":             gjson.Get(raw, "article").Value(),
		"inTransit":           gjson.Get(raw, "inTransit").Value(),
		"reserve":             gjson.Get(raw, "reserve").Value(),
	}
}

func minorOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
