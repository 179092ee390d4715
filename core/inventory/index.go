package inventory

// StockIndex maps product identity to the reported quantity on hand.
type StockIndex map[string]float64

// BuildStockIndex builds a lookup from a stock report. When the report lists
// the same product more than once, the first record wins, matching the
// linear first-match scan the stock report consumers have always used.
func BuildStockIndex(stocks []StockRecord) StockIndex {
	idx := make(StockIndex, len(stocks))
	for _, s := range stocks {
		if _, ok := idx[s.AssortmentID]; ok {
			continue
		}
		idx[s.AssortmentID] = s.Stock
	}
	return idx
}

// Lookup returns the quantity for a product identity. The second return is
// false when the report carried no record for the id; callers must propagate
// that absence rather than substituting zero.
func (idx StockIndex) Lookup(id string) (float64, bool) {
	v, ok := idx[id]
	return v, ok
}
