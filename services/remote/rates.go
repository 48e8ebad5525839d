package remote

import (
	"context"
	"net/http"
	"net/url"

	"aspcare/models"
)

// GetRate fetches the base rate for a vehicle type and wash level.
func (c *Client) GetRate(ctx context.Context, token, vehicleType, washLevel string) (*models.Rate, error) {
	q := url.Values{}
	q.Set("vehicleType", vehicleType)
	q.Set("washLevel", washLevel)

	var rate models.Rate
	if err := c.do(ctx, http.MethodGet, "/rates", q, token, nil, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetAvailability fetches the slot availability mapping for a date. A null body is an empty mapping.
func (c *Client) GetAvailability(ctx context.Context, token, date, serviceType string) (map[string]bool, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("serviceType", serviceType)

	availability := map[string]bool{}
	if err := c.do(ctx, http.MethodGet, "/bookings/availability", q, token, nil, &availability); err != nil {
		return nil, err
	}
	if availability == nil {
		availability = map[string]bool{}
	}
	return availability, nil
}
