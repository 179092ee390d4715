package inventory

import "strconv"

// NoCategory is the sentinel category for products without a path name.
const NoCategory = "No Category"

// FormatPrice converts a minor-unit amount into a display string with exactly
// two fractional digits: 12345 -> "123.45", 5 -> "0.05". Negative amounts pass
// through numerically (-12345 -> "-123.45").
func FormatPrice(minor int64) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}

// Classify returns the grouping category for a product: its path name when
// present, the NoCategory sentinel otherwise.
func Classify(p Product) string {
	if p.PathName != "" {
		return p.PathName
	}
	return NoCategory
}
