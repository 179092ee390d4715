package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"catalog-sync/core/inventory"
	"catalog-sync/core/moysklad"
	"catalog-sync/core/moysklad/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(client moysklad.Client) *fiber.App {
	app := fiber.New()
	feature := NewFeature(true, client, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleSyncAllAndList(t *testing.T) {
	client := new(mocks.Client)
	client.On("FetchProducts", mock.Anything).Return([]inventory.Product{
		{ID: "p1", Name: "Cola", PathName: "Drinks", SalePrices: []inventory.Price{{Value: 2500}}},
	}, nil)
	client.On("FetchStocks", mock.Anything).Return([]inventory.StockRecord{
		{AssortmentID: "p1", Stock: 4},
	}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var summary map[string]int
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 1, summary["fetched"])
	assert.Equal(t, 1, summary["created"])

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/entities", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ = io.ReadAll(resp.Body)
	var listing struct {
		Count    int                     `json:"count"`
		Entities []inventory.LocalEntity `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "p1", listing.Entities[0].ID)
	assert.Equal(t, "25.00", listing.Entities[0].DisplayPrice)
}

func TestFeatureEnabledToggle(t *testing.T) {
	client := new(mocks.Client)

	assert.True(t, NewFeature(true, client, zap.NewNop()).IsEnabled())
	assert.False(t, NewFeature(false, client, zap.NewNop()).IsEnabled())
}

func TestHandleSyncAll_FetchFailure(t *testing.T) {
	client := new(mocks.Client)
	fetchErr := &moysklad.FetchError{Endpoint: "/entity/assortment", Err: context.DeadlineExceeded}
	client.On("FetchProducts", mock.Anything).Return(nil, fetchErr)
	client.On("FetchStocks", mock.Anything).Return([]inventory.StockRecord{}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleGetEntity(t *testing.T) {
	client := new(mocks.Client)
	client.On("FetchProducts", mock.Anything).Return([]inventory.Product{
		{ID: "p1", Name: "Cola", PathName: "Drinks", Raw: `{"article":"A-1"}`},
	}, nil)
	client.On("FetchStocks", mock.Anything).Return([]inventory.StockRecord{}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/entities/p1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Entity     inventory.LocalEntity `json:"entity"`
		Attributes map[string]any        `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Cola", payload.Entity.Name)
	assert.Equal(t, "A-1", payload.Attributes["article"])

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/entities/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListDevices(t *testing.T) {
	client := new(mocks.Client)
	client.On("FetchProducts", mock.Anything).Return([]inventory.Product{
		{ID: "p1", Name: "Cola", PathName: "Drinks"},
		{ID: "p2", Name: "Fanta", PathName: "Drinks"},
		{ID: "p3", Name: "Chips"},
	}, nil)
	client.On("FetchStocks", mock.Anything).Return([]inventory.StockRecord{}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/devices", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var devices []struct {
		Device struct {
			Name string `json:"name"`
		} `json:"device"`
		Entities int `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(body, &devices))
	require.Len(t, devices, 2)
	assert.Equal(t, "Drinks", devices[0].Device.Name)
}
