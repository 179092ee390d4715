package moysklad

import (
	"context"
	"encoding/base64"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"catalog-sync/core/inventory"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	tokenPath      = "/security/token"
	assortmentPath = "/entity/assortment"
	stockPath      = "/report/stock/all/current"
)

// Client defines the API surface the sync engine consumes.
type Client interface {
	// Authenticate performs the token handshake and stores the bearer token.
	Authenticate(ctx context.Context) error
	// FetchProducts returns the product catalog. A non-success response
	// yields an empty slice, not an error.
	FetchProducts(ctx context.Context) ([]inventory.Product, error)
	// FetchStocks returns the current stock report, normalized from either
	// response shape.
	FetchStocks(ctx context.Context) ([]inventory.StockRecord, error)
}

// NewClient creates a MoySklad client with per-call timeouts taken from the
// configuration.
func NewClient(cfg Config, logger *zap.Logger) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &client{
		cfg:    cfg,
		logger: logger,
		http: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}
}

type client struct {
	cfg    Config
	logger *zap.Logger
	http   *http.Client

	mu    sync.RWMutex
	token string
}

func (c *client) Authenticate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return &AuthError{Reason: err.Error()}
	}
	creds := base64.StdEncoding.EncodeToString([]byte(c.cfg.Username + ":" + c.cfg.Password))
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: tokenPath, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Endpoint: tokenPath, Err: err}
	}

	// The API has been seen returning a usable token on non-200 responses,
	// so the body is consulted as well as the status.
	token := gjson.GetBytes(body, "access_token").String()
	if resp.StatusCode != http.StatusOK && token == "" {
		return &AuthError{Status: resp.StatusCode, Reason: "token request rejected"}
	}
	if token == "" {
		return &AuthError{Status: resp.StatusCode, Reason: "response lacks access_token"}
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.logger.Info("Authenticated against MoySklad")
	return nil
}

func (c *client) FetchProducts(ctx context.Context) ([]inventory.Product, error) {
	status, body, err := c.get(ctx, assortmentPath)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Warn("Catalog fetch returned non-success status, treating catalog as empty",
			zap.Int("status", status))
		return []inventory.Product{}, nil
	}

	rows := gjson.GetBytes(body, "rows").Array()
	products := make([]inventory.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, parseProduct(row))
	}
	return products, nil
}

func (c *client) FetchStocks(ctx context.Context) ([]inventory.StockRecord, error) {
	status, body, err := c.get(ctx, stockPath)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Warn("Stock fetch returned non-success status, treating report as empty",
			zap.Int("status", status))
		return []inventory.StockRecord{}, nil
	}

	// The report comes back either as a bare array or wrapped in "rows".
	root := gjson.ParseBytes(body)
	rows := root
	if root.IsObject() {
		rows = root.Get("rows")
	}

	entries := rows.Array()
	records := make([]inventory.StockRecord, 0, len(entries))
	for _, row := range entries {
		records = append(records, inventory.StockRecord{
			AssortmentID: row.Get("assortmentId").String(),
			Stock:        row.Get("stock").Float(),
		})
	}
	return records, nil
}

func (c *client) get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, nil, &FetchError{Endpoint: path, Err: err}
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &FetchError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &FetchError{Endpoint: path, Err: err}
	}
	return resp.StatusCode, body, nil
}

// parseProduct extracts the typed fields from one catalog row and keeps the
// row's raw JSON for attribute exposure.
func parseProduct(row gjson.Result) inventory.Product {
	p := inventory.Product{
		ID:           row.Get("id").String(),
		Name:         row.Get("name").String(),
		PathName:     row.Get("pathName").String(),
		Code:         row.Get("code").String(),
		ExternalCode: row.Get("externalCode").String(),
		Archived:     row.Get("archived").Bool(),
		Weight:       row.Get("weight").Float(),
		Volume:       row.Get("volume").Float(),
		Raw:          row.Raw,
	}
	for _, sp := range row.Get("salePrices").Array() {
		p.SalePrices = append(p.SalePrices, inventory.Price{
			Value: sp.Get("value").Int(),
			Type:  sp.Get("priceType.name").String(),
		})
	}
	if v := row.Get("minPrice.value"); v.Exists() {
		n := v.Int()
		p.MinPrice = &n
	}
	if v := row.Get("buyPrice.value"); v.Exists() {
		n := v.Int()
		p.BuyPrice = &n
	}
	return p
}
