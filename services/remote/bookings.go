package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"aspcare/models"
)

func bookingPath(id int64, suffix string) string {
	return fmt.Sprintf("/bookings/%d%s", id, suffix)
}

// ListBookingsByPhone returns every booking of a phone, in server order.
func (c *Client) ListBookingsByPhone(ctx context.Context, token, phone string) ([]models.Booking, error) {
	q := url.Values{}
	q.Set("phone", phone)

	raw, err := c.send(ctx, http.MethodGet, "/bookings/by-phone", q, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Booking](raw)
}

// HasBookings reports whether the phone has booking history. Only a non-empty JSON
// array counts; a single object or any other body is treated as no history.
func (c *Client) HasBookings(ctx context.Context, token, phone string) (bool, error) {
	q := url.Values{}
	q.Set("phone", phone)

	raw, err := c.send(ctx, http.MethodGet, "/bookings/by-phone", q, token, nil)
	if err != nil {
		return false, err
	}
	return nonEmptyArray(raw), nil
}

// RescheduleBooking moves a booking to a new date and slot. The updated booking is
// returned when the server echoes it.
func (c *Client) RescheduleBooking(ctx context.Context, token string, id int64, req models.RescheduleRequest) (*models.Booking, error) {
	raw, err := c.send(ctx, http.MethodPut, bookingPath(id, ""), nil, token, req)
	if err != nil {
		return nil, err
	}
	var b models.Booking
	if !decodeOptional(raw, &b) {
		return nil, nil
	}
	return &b, nil
}

// UpgradeBooking asks the server to upgrade a booking's wash type.
func (c *Client) UpgradeBooking(ctx context.Context, token string, id int64, washType string) (*models.Booking, error) {
	raw, err := c.send(ctx, http.MethodPut, bookingPath(id, "/upgrade"), nil, token, models.UpgradeRequest{WashType: washType})
	if err != nil {
		return nil, err
	}
	var b models.Booking
	if !decodeOptional(raw, &b) {
		return nil, nil
	}
	return &b, nil
}

// GetCancelQuote fetches the server-computed refund offer.
func (c *Client) GetCancelQuote(ctx context.Context, token string, id int64) (*models.CancelQuote, error) {
	var quote models.CancelQuote
	if err := c.do(ctx, http.MethodGet, bookingPath(id, "/cancel-quote"), nil, token, nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// ConfirmCancel cancels a booking.
func (c *Client) ConfirmCancel(ctx context.Context, token string, id int64) (*models.CancelConfirmation, error) {
	raw, err := c.send(ctx, http.MethodPost, bookingPath(id, "/cancel-confirm"), nil, token, nil)
	if err != nil {
		return nil, err
	}
	var conf models.CancelConfirmation
	decodeOptional(raw, &conf)
	if conf.Message == "" {
		conf.Message = "Booking cancelled successfully"
	}
	return &conf, nil
}
