package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNewLocalEntity(t *testing.T) {
	p := Product{
		ID:         "p1",
		Name:       "Cola",
		PathName:   "Drinks",
		SalePrices: []Price{{Value: 2500}, {Value: 2000}},
	}

	e := NewLocalEntity(p, "Drinks", ptr(4))

	assert.Equal(t, "p1", e.ID)
	assert.Equal(t, "Drinks", e.Category)
	// The first sale price is the canonical display price.
	assert.Equal(t, "25.00", e.DisplayPrice)
	require.NotNil(t, e.Quantity)
	assert.Equal(t, 4.0, *e.Quantity)
}

func TestNewLocalEntity_NoSalePrices(t *testing.T) {
	e := NewLocalEntity(Product{ID: "p1", Name: "Cola"}, NoCategory, nil)

	assert.Equal(t, "0.00", e.DisplayPrice)
	assert.Nil(t, e.Quantity)
}

func TestUpdateItem_KeepsCategory(t *testing.T) {
	e := NewLocalEntity(Product{ID: "p1", Name: "Cola", PathName: "Drinks"}, "Drinks", nil)

	e.UpdateItem(Product{
		ID:         "p1",
		Name:       "Cola Zero",
		PathName:   "Soft Drinks", // moved in the remote catalog
		SalePrices: []Price{{Value: 1500}},
	}, ptr(2))

	assert.Equal(t, "Drinks", e.Category, "category is fixed at creation")
	assert.Equal(t, "Cola Zero", e.Name)
	assert.Equal(t, "15.00", e.DisplayPrice)
	require.NotNil(t, e.Quantity)
	assert.Equal(t, 2.0, *e.Quantity)
}

func TestUpdateStock(t *testing.T) {
	e := NewLocalEntity(Product{ID: "p1"}, NoCategory, nil)

	e.UpdateStock(9)

	require.NotNil(t, e.Quantity)
	assert.Equal(t, 9.0, *e.Quantity)
}

func TestAttributes(t *testing.T) {
	raw := `{
		"id": "p1",
		"accountId": "acc-1",
		"shared": true,
		"name": "Cola",
		"article": "A-42",
		"minPrice": {"value": 500},
		"buyPrice": {"value": 1200},
		"salePrices": [{"value": 2500}, {"value": 2000}]
	}`
	min := int64(500)
	buy := int64(1200)
	e := NewLocalEntity(Product{
		ID:         "p1",
		Name:       "Cola",
		SalePrices: []Price{{Value: 2500}, {Value: 2000}},
		MinPrice:   &min,
		BuyPrice:   &buy,
		Raw:        raw,
	}, NoCategory, ptr(3))

	attrs := e.Attributes()

	assert.Equal(t, "acc-1", attrs["accountId"])
	assert.Equal(t, true, attrs["shared"])
	assert.Equal(t, "A-42", attrs["article"])
	assert.Equal(t, "5.00", attrs["minPrice"])
	assert.Equal(t, "12.00", attrs["buyPrice"])
	assert.Equal(t, []string{"25.00", "20.00"}, attrs["salePrices"])
	assert.Equal(t, 3.0, attrs["stock"])
	// Fields the snapshot never carried come out as nil.
	assert.Nil(t, attrs["description"])
}

func TestAttributes_NoStockData(t *testing.T) {
	e := NewLocalEntity(Product{ID: "p1", Raw: `{"id":"p1"}`}, NoCategory, nil)

	assert.Nil(t, e.Attributes()["stock"])
}
