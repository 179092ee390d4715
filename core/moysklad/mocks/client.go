package mocks

import (
	"context"

	"catalog-sync/core/inventory"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of moysklad.Client
type Client struct {
	mock.Mock
}

func (m *Client) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) FetchProducts(ctx context.Context) ([]inventory.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]inventory.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchStocks(ctx context.Context) ([]inventory.StockRecord, error) {
	args := m.Called(ctx)
	if stocks, ok := args.Get(0).([]inventory.StockRecord); ok {
		return stocks, args.Error(1)
	}
	return nil, args.Error(1)
}
