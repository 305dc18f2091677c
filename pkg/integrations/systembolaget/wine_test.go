package systembolaget_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/Vinlogg/configs"
	. "droscher.com/Vinlogg/pkg/integrations/systembolaget"
)

const barolo = `{
  "products": [
    {
      "productId": "1004489",
      "productNumber": "7415",
      "productNameBold": "Barolo",
      "productNameThin": "Classico",
      "price": 349.0,
      "tapiTasteArray": ["Nöt", "Vilt"],
      "images": [{"imageUrl": "https://product-cdn.systembolaget.se/productimages/7415"}]
    },
    {
      "productId": "1",
      "productNumber": "2",
      "productNameBold": "Something else",
      "price": 99.0
    }
  ]
}`

func newIntegration(t *testing.T, handler http.HandlerFunc) *SystembolagetIntegration {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewSystembolagetIntegration(configs.Systembolaget{
		SearchURL: server.URL + "/search",
		SiteURL:   "https://www.systembolaget.se",
		PageSize:  10,
	}, zaptest.NewLogger(t))
}

func TestFindWine_ReturnsFirstProduct(t *testing.T) {
	var query, accept, origin string

	integration := newIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		accept = r.Header.Get("Accept")
		origin = r.Header.Get("Origin")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(barolo))
	})

	product, err := integration.FindWine(context.Background(), "Barolo Classico", pointy.String("Borgogno"))
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "page=1&q=Barolo+Classico+Borgogno&size=10", query)
	assert.Equal(t, "application/json", accept)
	assert.Equal(t, "https://www.systembolaget.se", origin)

	assert.Equal(t, "7415", product.ArticleNumber)
	assert.Equal(t, "Barolo Classico", product.Name)
	assert.InDelta(t, 349.0, *product.Price, 0.01)
	assert.Equal(t, []string{"Nöt", "Vilt"}, product.FoodPairingTags)
	assert.Equal(t, "https://www.systembolaget.se/produkt/vin/7415", product.URL)
	assert.Equal(t, "https://product-cdn.systembolaget.se/productimages/7415", *product.ImageURL)
	assert.Equal(t, IntegrationName, product.Source)
}

func TestFindWine_FallsBackToProductID(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"productId":"991","productNameBold":"Cava"}]}`))
	})

	product, err := integration.FindWine(context.Background(), "Cava", nil)
	require.NoError(t, err)

	assert.Equal(t, "991", product.ArticleNumber)
	assert.Equal(t, "Cava", product.Name)
	assert.Nil(t, product.Price)
	assert.Nil(t, product.ImageURL)
	assert.Empty(t, product.FoodPairingTags)
}

func TestFindWine_NoProducts(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[]}`))
	})

	product, err := integration.FindWine(context.Background(), "Okänt", nil)

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestFindWine_HTTPError(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	product, err := integration.FindWine(context.Background(), "Barolo", nil)

	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestFindWine_InvalidJSON(t *testing.T) {
	integration := newIntegration(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	product, err := integration.FindWine(context.Background(), "Barolo", nil)

	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestFindWine_CancelledContext(t *testing.T) {
	integration := newIntegration(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("request should not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	product, err := integration.FindWine(ctx, "Barolo", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, product)
}
