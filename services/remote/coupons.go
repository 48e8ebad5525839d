package remote

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"aspcare/models"
)

// GenerateCoupon creates a referral coupon.
func (c *Client) GenerateCoupon(ctx context.Context, token string, req models.CouponGenerateRequest) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := c.do(ctx, http.MethodPost, "/coupons/generate", nil, token, req, &coupon); err != nil {
		return nil, err
	}
	if coupon.CouponCode == "" {
		return nil, &RequestFailedError{Status: http.StatusOK, Message: "coupon code missing from response"}
	}
	return &coupon, nil
}

// ValidateCoupon asks whether a coupon applies to an order. A 4xx answer that still
// carries a verdict body is returned as that verdict.
func (c *Client) ValidateCoupon(ctx context.Context, token string, req models.CouponValidateRequest) (*models.CouponValidation, error) {
	var v models.CouponValidation
	err := c.do(ctx, http.MethodPost, "/coupons/validate", nil, token, req, &v)
	if err == nil {
		return &v, nil
	}

	var failed *RequestFailedError
	if errors.As(err, &failed) && failed.Status >= 400 && failed.Status < 500 {
		var verdict models.CouponValidation
		if decodeOptional(failed.Body, &verdict) && !verdict.Valid {
			return &verdict, nil
		}
	}
	return nil, err
}

// GetReferralDetails lists the referrals credited to a phone.
func (c *Client) GetReferralDetails(ctx context.Context, token, phone string) (*models.ReferralDetails, error) {
	q := url.Values{}
	q.Set("userPhone", phone)

	var details models.ReferralDetails
	if err := c.do(ctx, http.MethodGet, "/coupons/referral-details", q, token, nil, &details); err != nil {
		return nil, err
	}
	if details.Referrals == nil {
		details.Referrals = []models.Referral{}
	}
	return &details, nil
}
