package inventory

// Price is a single price entry on a product, in minor currency units
// (e.g. 12345 means 123.45).
type Price struct {
	// Value is the amount in minor units.
	Value int64 `json:"value"`
	// Type is the price type label reported by the API, if any.
	Type string `json:"type,omitempty"`
}

// Product is an immutable snapshot of one catalog row as returned by the
// assortment endpoint. Fields the engine acts on are parsed out; everything
// else is carried opaquely in Raw.
type Product struct {
	// ID is the stable identity of the product, unique within the catalog.
	ID string
	// Name is the display name.
	Name string
	// PathName is the folder path used for grouping; may be empty.
	PathName string
	// Code and ExternalCode are auxiliary identifiers.
	Code         string
	ExternalCode string
	// Archived marks products removed from active sale.
	Archived bool
	// SalePrices is ordered; the first entry is the canonical display price.
	SalePrices []Price
	// MinPrice and BuyPrice are optional minor-unit amounts.
	MinPrice *int64
	BuyPrice *int64
	Weight   float64
	Volume   float64
	// Raw is the raw JSON of the catalog row, kept for attribute exposure.
	Raw string
}

// FirstSalePrice returns the minor-unit value of the first sale price,
// or zero when the product carries no prices.
func (p Product) FirstSalePrice() int64 {
	if len(p.SalePrices) == 0 {
		return 0
	}
	return p.SalePrices[0].Value
}

// StockRecord reports the current quantity on hand for one product identity.
type StockRecord struct {
	AssortmentID string  `json:"assortmentId"`
	Stock        float64 `json:"stock"`
}

// LocalEntity is one locally tracked product record. Its ID equals the
// originating product's ID and never changes; Category is fixed when the
// entity is first created and survives snapshot updates.
type LocalEntity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	DisplayPrice string `json:"display_price"`
	// Quantity is nil when no stock record matched the product, which is
	// distinct from a reported quantity of zero.
	Quantity *float64 `json:"quantity"`
	// Item is the latest product snapshot.
	Item Product `json:"-"`
}

// NewLocalEntity builds a tracked entity from a catalog snapshot.
// The category is assigned here, once.
func NewLocalEntity(p Product, category string, quantity *float64) *LocalEntity {
	return &LocalEntity{
		ID:           p.ID,
		Name:         p.Name,
		Category:     category,
		DisplayPrice: FormatPrice(p.FirstSalePrice()),
		Quantity:     quantity,
		Item:         p,
	}
}

// UpdateItem replaces the snapshot and re-derives name, display price and
// quantity. Category is deliberately left untouched.
func (e *LocalEntity) UpdateItem(p Product, quantity *float64) {
	e.Item = p
	e.Name = p.Name
	e.DisplayPrice = FormatPrice(p.FirstSalePrice())
	e.Quantity = quantity
}

// UpdateStock sets only the quantity, leaving the snapshot alone.
func (e *LocalEntity) UpdateStock(stock float64) {
	e.Quantity = &stock
}
