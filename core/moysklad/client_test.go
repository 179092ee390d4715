package moysklad

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL:        srv.URL,
		Username:       "user",
		Password:       "pass",
		TimeoutSeconds: 2,
	}, zap.NewNop())
	return client, srv
}

func TestAuthenticate(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/security/token", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"access_token": "tok-123"}`)
	}))

	err := client.Authenticate(context.Background())
	require.NoError(t, err)

	creds := base64.StdEncoding.EncodeToString([]byte("user:pass"))
	assert.Equal(t, "Basic "+creds, gotAuth)
}

func TestAuthenticate_Rejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors": [{"error": "auth"}]}`)
	}))

	err := client.Authenticate(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	err := client.Authenticate(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestAuthenticate_TokenOnNonSuccessStatus(t *testing.T) {
	// The API has been seen returning a usable token with an odd status.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, `{"access_token": "tok-123"}`)
	}))

	require.NoError(t, client.Authenticate(context.Background()))
}

func TestFetchProducts(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/security/token":
			fmt.Fprint(w, `{"access_token": "tok-123"}`)
		case "/entity/assortment":
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"rows": [
				{
					"id": "p1",
					"name": "Cola",
					"pathName": "Drinks",
					"code": "C-1",
					"archived": false,
					"salePrices": [{"value": 2500, "priceType": {"name": "retail"}}],
					"minPrice": {"value": 500},
					"article": "A-42"
				},
				{"id": "p2", "name": "Bare"}
			]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()
	require.NoError(t, client.Authenticate(ctx))

	products, err := client.FetchProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Bearer tok-123", gotAuth)

	p := products[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Drinks", p.PathName)
	require.Len(t, p.SalePrices, 1)
	assert.Equal(t, int64(2500), p.SalePrices[0].Value)
	assert.Equal(t, "retail", p.SalePrices[0].Type)
	require.NotNil(t, p.MinPrice)
	assert.Equal(t, int64(500), *p.MinPrice)
	assert.Nil(t, p.BuyPrice)
	// The raw row survives for attribute exposure.
	assert.Contains(t, p.Raw, `"article"`)

	assert.Nil(t, products[1].MinPrice)
	assert.Empty(t, products[1].SalePrices)
}

func TestFetchProducts_NonSuccessIsEmptyCatalog(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products, "empty catalog, not a failed fetch")
}

func TestFetchStocks_ShapeNormalization(t *testing.T) {
	records := `[{"assortmentId": "p1", "stock": 3.5}, {"assortmentId": "p2", "stock": 0}]`

	for name, body := range map[string]string{
		"bare array":     records,
		"wrapped object": `{"rows": ` + records + `}`,
	} {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/report/stock/all/current", r.URL.Path)
				fmt.Fprint(w, body)
			}))

			stocks, err := client.FetchStocks(context.Background())
			require.NoError(t, err)
			require.Len(t, stocks, 2)
			assert.Equal(t, "p1", stocks[0].AssortmentID)
			assert.Equal(t, 3.5, stocks[0].Stock)
			assert.Equal(t, 0.0, stocks[1].Stock)
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := client.FetchProducts(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "/entity/assortment", fetchErr.Endpoint)
	assert.True(t, errors.Unwrap(fetchErr) != nil)
}

func TestFetch_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStocks(ctx)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
