package remote

import (
	"context"
	"net/http"
	"net/url"

	"aspcare/models"
)

func (c *Client) ListAreas(ctx context.Context, token string) ([]string, error) {
	raw, err := c.send(ctx, http.MethodGet, "/centres/areas", nil, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[string](raw)
}

func (c *Client) SearchCentres(ctx context.Context, token, area string) ([]models.Centre, error) {
	q := url.Values{}
	q.Set("area", area)

	raw, err := c.send(ctx, http.MethodGet, "/centres/search", q, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Centre](raw)
}

func (c *Client) ListDeals(ctx context.Context, token string) ([]models.Deal, error) {
	raw, err := c.send(ctx, http.MethodGet, "/api/deal-prices", nil, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Deal](raw)
}

// GetGreeting fetches the time-of-day greeting for a phone.
func (c *Client) GetGreeting(ctx context.Context, token, phone string) (*models.Greeting, error) {
	q := url.Values{}
	q.Set("phone", phone)

	var g models.Greeting
	if err := c.do(ctx, http.MethodGet, "/users/greeting", q, token, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
