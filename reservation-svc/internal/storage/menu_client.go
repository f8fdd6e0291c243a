package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"menuverse/reservation-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MenuClient reads restaurants and carts from menu-svc's HTTP API.
type MenuClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewMenuClient(baseURL string, client HTTPClient) *MenuClient {
	return &MenuClient{BaseURL: baseURL, Client: client}
}

func (c *MenuClient) Restaurant(ctx context.Context, id string) (*domain.RestaurantInfo, error) {
	var rest domain.RestaurantInfo
	if err := c.get(ctx, "/api/restaurants/"+url.PathEscape(id), domain.ErrRestaurantNotFound, &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (c *MenuClient) Cart(ctx context.Context, cartID string) (*domain.CartSnapshot, error) {
	var cart domain.CartSnapshot
	if err := c.get(ctx, "/api/carts/"+url.PathEscape(cartID), domain.ErrCartNotFound, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.PreOrderItem{}
	}
	return &cart, nil
}

func (c *MenuClient) get(ctx context.Context, path string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("menu service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("menu service: unexpected status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
