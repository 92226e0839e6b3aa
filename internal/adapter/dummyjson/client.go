// Package dummyjson implements the catalog client port against the
// DummyJSON product API.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/port"
)

var _ port.CatalogClient = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
	}
}

// FetchProducts retrieves one page of raw catalog records. Failures are
// returned to the caller as is; there is no retry.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.CatalogRecord, error) {
	const op = "dummyjson.FetchProducts"

	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)

	var resp productsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]domain.CatalogRecord, 0, len(resp.Products))
	for _, p := range resp.Products {
		records = append(records, domain.CatalogRecord{
			ID:                 p.ID,
			Title:              p.Title,
			Price:              p.Price,
			Thumbnail:          p.Thumbnail,
			Images:             p.Images,
			Category:           p.Category,
			Description:        p.Description,
			Rating:             p.Rating,
			Reviews:            len(p.Reviews),
			Stock:              p.Stock,
			Brand:              p.Brand,
			DiscountPercentage: p.DiscountPercentage,
		})
	}
	return records, nil
}

// FetchCategories retrieves the category slugs.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	const op = "dummyjson.FetchCategories"

	var cats []categoryRecord
	if err := c.getJSON(ctx, c.baseURL+"/products/categories", &cats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slugs := make([]string, 0, len(cats))
	for _, cat := range cats {
		if cat.Slug != "" {
			slugs = append(slugs, cat.Slug)
		}
	}
	return slugs, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
