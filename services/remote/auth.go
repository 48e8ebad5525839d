package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"aspcare/models"
)

type authEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	JWT     string          `json:"jwt"`
}

type authData struct {
	Token     string `json:"token"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
}

// login reads data as either the token string or an object carrying token, phone and firstName.
func (e authEnvelope) login() *models.UpstreamLogin {
	out := &models.UpstreamLogin{Message: e.Message}

	var asString string
	var asObject authData
	switch {
	case json.Unmarshal(e.Data, &asString) == nil:
		out.Token = asString
	case decodeOptional(e.Data, &asObject):
		out.Token = asObject.Token
		out.Phone = asObject.Phone
		out.FirstName = asObject.FirstName
	}
	if out.Token == "" {
		out.Token = e.Token
	}
	if out.Token == "" {
		out.Token = e.JWT
	}
	return out
}

func (c *Client) authCall(ctx context.Context, path string, body any) (*authEnvelope, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, path, nil, "", body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// SendOTP asks the booking API to text a one-time password.
func (c *Client) SendOTP(ctx context.Context, mobileNumber string) (string, error) {
	env, err := c.authCall(ctx, "/auth/login/send-otp", map[string]string{"mobileNumber": mobileNumber})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// VerifyOTP exchanges a mobile number and OTP for a booking API token.
func (c *Client) VerifyOTP(ctx context.Context, mobileNumber, otp string) (*models.UpstreamLogin, error) {
	env, err := c.authCall(ctx, "/auth/verify-otp", map[string]string{
		"mobileNumber": mobileNumber,
		"otp":          otp,
	})
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &RequestFailedError{Status: http.StatusOK, Message: rejection(env.Message, "OTP verification failed. Please try again.")}
	}
	login := env.login()
	if login.Phone == "" {
		login.Phone = mobileNumber
	}
	return login, nil
}

// GoogleLogin exchanges a Google credential for a booking API token.
func (c *Client) GoogleLogin(ctx context.Context, googleToken string) (*models.UpstreamLogin, error) {
	env, err := c.authCall(ctx, "/auth/login/google", map[string]string{"googleToken": googleToken})
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &RequestFailedError{Status: http.StatusOK, Message: rejection(env.Message, "Google login failed. Please try again.")}
	}
	return env.login(), nil
}

func rejection(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
