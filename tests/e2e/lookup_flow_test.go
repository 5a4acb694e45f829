package e2e

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
	"github.com/murkotick/product-lookup-service/internal/app/product/repo"
	"github.com/murkotick/product-lookup-service/internal/app/product/usecases/seed_products"
	"github.com/murkotick/product-lookup-service/internal/client"
	"github.com/murkotick/product-lookup-service/internal/pkg/committer"
)

func TestLookupSeededProduct(t *testing.T) {
	requireEmulator(t)

	resp, err := http.Get(srv.URL + "/products/100")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":100,"name":"Widget A","description":"Premium widget for testing","price":19.99}`, string(body))
}

func TestLookupAbsentProductIs404EmptyBody(t *testing.T) {
	requireEmulator(t)

	resp, err := http.Get(srv.URL + "/products/999999")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestRepeatedLookupsReturnIdenticalBodies(t *testing.T) {
	requireEmulator(t)

	var bodies []string
	for i := 0; i < 3; i++ {
		resp, err := http.Get(srv.URL + "/products/101")
		require.NoError(t, err)
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		bodies = append(bodies, string(b))
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestNullColumnsSerializeAsJSONNull(t *testing.T) {
	requireEmulator(t)

	resp, err := http.Get(srv.URL + "/products/103")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":103,"name":"Mystery Item","description":"Price to be announced","price":null}`, string(body))
}

func TestClientFetcherRoundTrip(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	v, err := api.GetProductByID(ctx, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(100), v.ID)
	require.NotNil(t, v.Name)
	assert.Equal(t, "Widget A", *v.Name)
	require.NotNil(t, v.Description)
	assert.Equal(t, "Premium widget for testing", *v.Description)
	require.NotNil(t, v.Price)
	assert.Equal(t, 19.99, *v.Price)
}

func TestClientFetcherNotFoundMessage(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := api.GetProductByID(ctx, 999)
	require.Error(t, err)

	var cerr *client.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, client.KindNotFound, cerr.Kind)
	assert.Equal(t, "Product with ID 999 not found", cerr.Message)
}

func TestSearchSessionAgainstRealServer(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := client.NewSearch(api)

	require.Equal(t, client.StateSuccess, s.Submit(ctx, "100"))
	require.NotNil(t, s.Result())
	assert.Equal(t, int64(100), s.Result().ID)

	require.Equal(t, client.StateError, s.Submit(ctx, "999"))
	assert.Equal(t, "Product with ID 999 not found", s.Message())
}

func TestSeedThenLookupNewRow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "Late Arrival"
	price := 7.25
	seeder := seed_products.NewHandler(repo.NewProductRepo(), committer.NewAdapter(spClient))
	n, err := seeder.Execute(ctx, []*domain.Product{{ID: 500, Name: &name, Price: &price}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Every request reflects current storage state: the row is visible
	// immediately, no cache in between.
	v, err := api.GetProductByID(ctx, 500)
	require.NoError(t, err)
	require.NotNil(t, v.Name)
	assert.Equal(t, "Late Arrival", *v.Name)
	assert.Nil(t, v.Description)
}

func TestHealthzReportsStorage(t *testing.T) {
	requireEmulator(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSHeadersOnRealServer(t *testing.T) {
	requireEmulator(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/products/100", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
