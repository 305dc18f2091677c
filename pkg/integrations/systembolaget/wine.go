package systembolaget

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/pkg/model"
)

type searchResponse struct {
	Products []productJSON `json:"products"`
}

type productJSON struct {
	ProductID       string   `json:"productId"`
	ProductNumber   string   `json:"productNumber"`
	ProductNameBold string   `json:"productNameBold"`
	ProductNameThin *string  `json:"productNameThin"`
	Price           *float64 `json:"price"`
	TasteArray      []string `json:"tapiTasteArray"`
	Images          []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"images"`
}

// FindWine searches the product catalog for name and producer and returns the first product.
func (s *SystembolagetIntegration) FindWine(ctx context.Context, name string, producer *string) (*model.RetailerProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(s.allowedDomain()),
		colly.UserAgent(userAgent),
	)

	var (
		errs   error
		result *model.RetailerProduct
	)

	collector.OnRequest(func(request *colly.Request) {
		request.Headers.Set("Accept", "application/json")
		request.Headers.Set("Accept-Language", "sv-SE,sv;q=0.9,en-US;q=0.8,en;q=0.7")
		request.Headers.Set("Origin", s.siteURL)
		request.Headers.Set("Referer", s.siteURL+"/")
	})

	collector.OnResponse(func(response *colly.Response) {
		var search searchResponse

		err := json.Unmarshal(response.Body, &search)
		if multierr.AppendInto(&errs, err) {
			s.logger.Error("failed to decode product search", zap.Error(err))

			return
		}

		if len(search.Products) == 0 {
			s.logger.Info("no products found", zap.String("query", response.Request.URL.Query().Get("q")))

			return
		}

		result = s.toRetailerProduct(search.Products[0])
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("product search failed", zap.Int("status", response.StatusCode), zap.Error(err))
	})

	if err := collector.Visit(s.searchRequestURL(name, producer)); err != nil {
		multierr.AppendInto(&errs, fmt.Errorf("systembolaget search: %w", err))
	}

	if errs != nil {
		return nil, errs
	}

	return result, nil
}

func (s *SystembolagetIntegration) searchRequestURL(name string, producer *string) string {
	query := strings.TrimSpace(name)
	if producer != nil && *producer != "" {
		query = strings.TrimSpace(query + " " + *producer)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("size", strconv.Itoa(s.pageSize))
	params.Set("page", "1")

	return s.searchURL + "?" + params.Encode()
}

func (s *SystembolagetIntegration) toRetailerProduct(product productJSON) *model.RetailerProduct {
	articleNumber := product.ProductNumber
	if articleNumber == "" {
		articleNumber = product.ProductID
	}

	name := product.ProductNameBold
	if product.ProductNameThin != nil && *product.ProductNameThin != "" {
		name = name + " " + *product.ProductNameThin
	}

	var imageURL *string
	if len(product.Images) > 0 && product.Images[0].ImageURL != "" {
		imageURL = &product.Images[0].ImageURL
	}

	tags := product.TasteArray
	if tags == nil {
		tags = []string{}
	}

	return &model.RetailerProduct{
		ArticleNumber:   articleNumber,
		Name:            name,
		Price:           product.Price,
		FoodPairingTags: tags,
		URL:             s.siteURL + "/produkt/vin/" + articleNumber,
		ImageURL:        imageURL,
		Source:          IntegrationName,
	}
}
