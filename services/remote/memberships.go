package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"aspcare/models"
)

// GetActiveMembership returns the phone's active membership; ErrNotFound when there is none.
func (c *Client) GetActiveMembership(ctx context.Context, token, phone string) (*models.Membership, error) {
	q := url.Values{}
	q.Set("phone", phone)

	raw, err := c.send(ctx, http.MethodGet, "/memberships/active/by-phone", q, token, nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Membership](raw)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("active membership: %w", ErrNotFound)
	}
	return &list[0], nil
}

// ListMemberships returns the phone's membership history.
func (c *Client) ListMemberships(ctx context.Context, token, phone string) ([]models.Membership, error) {
	q := url.Values{}
	q.Set("phone", phone)

	raw, err := c.send(ctx, http.MethodGet, "/memberships/by-phone", q, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Membership](raw)
}

// CreateMembership records a purchase or upgrade.
func (c *Client) CreateMembership(ctx context.Context, token string, req models.MembershipRequest) (*models.Membership, error) {
	var m models.Membership
	if err := c.do(ctx, http.MethodPost, "/memberships", nil, token, req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ActivateMembership moves a HOLD membership to ACTIVE.
func (c *Client) ActivateMembership(ctx context.Context, token string, id int64) (*models.Membership, error) {
	raw, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/memberships/%d/activate", id), nil, token, nil)
	if err != nil {
		return nil, err
	}
	var m models.Membership
	if !decodeOptional(raw, &m) {
		return nil, nil
	}
	return &m, nil
}
