// File: services/auth/service.go
package auth

import (
	"context"
	"errors"
	"time"

	"aspcare/models"
	"aspcare/services/booking"
	"aspcare/services/remote"
	"aspcare/services/session"
	"aspcare/utils"

	"go.uber.org/zap"
)

// UpstreamAuth is the slice of the remote client used for logging in.
type UpstreamAuth interface {
	SendOTP(ctx context.Context, mobileNumber string) (string, error)
	VerifyOTP(ctx context.Context, mobileNumber, otp string) (*models.UpstreamLogin, error)
	GoogleLogin(ctx context.Context, googleToken string) (*models.UpstreamLogin, error)
}

// CheckoutDeleter drops in-progress checkout state at logout.
type CheckoutDeleter interface {
	Delete(ctx context.Context, sessionID string) error
}

type AuthService interface {
	SendOTP(ctx context.Context, mobileNumber string) (string, error)
	VerifyOTP(ctx context.Context, mobileNumber, otp string) (*models.LoginResult, error)
	GoogleLogin(ctx context.Context, googleToken string) (*models.LoginResult, error)
	Logout(ctx context.Context, sess *models.Session) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Upstream  UpstreamAuth
	Sessions  session.Store
	Checkouts CheckoutDeleter
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

// LoginError is a login the booking API refused (wrong OTP, unknown Google account).
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

func IsLoginError(err error) bool {
	var le *LoginError
	return errors.As(err, &le)
}

const defaultOTPSent = "OTP sent successfully"

func (s *DefaultAuthService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// rejected turns a client-side upstream refusal into a LoginError; anything else passes through.
func rejected(err error, fallback string) error {
	var rf *remote.RequestFailedError
	if errors.As(err, &rf) && rf.Status < 500 {
		msg := rf.Message
		if msg == "" {
			msg = fallback
		}
		return &LoginError{Message: msg}
	}
	return err
}

func (s *DefaultAuthService) SendOTP(ctx context.Context, mobileNumber string) (string, error) {
	if err := booking.ValidateMobileNumber(mobileNumber); err != nil {
		return "", err
	}
	msg, err := s.Upstream.SendOTP(ctx, mobileNumber)
	if err != nil {
		return "", rejected(err, "Failed to send OTP")
	}
	if msg == "" {
		msg = defaultOTPSent
	}
	return msg, nil
}

func (s *DefaultAuthService) VerifyOTP(ctx context.Context, mobileNumber, otp string) (*models.LoginResult, error) {
	if err := booking.ValidateMobileNumber(mobileNumber); err != nil {
		return nil, err
	}
	if err := booking.ValidateOTP(otp); err != nil {
		return nil, err
	}
	login, err := s.Upstream.VerifyOTP(ctx, mobileNumber, otp)
	if err != nil {
		return nil, rejected(err, "Invalid OTP")
	}
	if login.Phone == "" {
		login.Phone = mobileNumber
	}
	return s.startSession(ctx, login)
}

func (s *DefaultAuthService) GoogleLogin(ctx context.Context, googleToken string) (*models.LoginResult, error) {
	if googleToken == "" {
		return nil, booking.NewValidationError("googleToken", "Google sign-in token is required")
	}
	login, err := s.Upstream.GoogleLogin(ctx, googleToken)
	if err != nil {
		return nil, rejected(err, "Google login failed")
	}
	return s.startSession(ctx, login)
}

func (s *DefaultAuthService) startSession(ctx context.Context, login *models.UpstreamLogin) (*models.LoginResult, error) {
	sess := &models.Session{
		Phone:         login.Phone,
		FirstName:     login.FirstName,
		UpstreamToken: login.Token,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		s.logger().Error("Failed to create session", zap.Error(err))
		return nil, err
	}

	token, err := utils.GenerateSessionToken(sess.ID, sess.Phone, s.TokenTTL)
	if err != nil {
		s.logger().Error("Failed to mint session token", zap.String("sessionID", sess.ID), zap.Error(err))
		_ = s.Sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	sess.TokenHash = utils.HashToken(token)
	if err := s.Sessions.Save(ctx, sess); err != nil {
		s.logger().Error("Failed to bind session token", zap.String("sessionID", sess.ID), zap.Error(err))
		return nil, err
	}

	s.logger().Info("Session started", zap.String("sessionID", sess.ID))
	return &models.LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.TokenTTL).Unix(),
		Session:   *sess,
	}, nil
}

// Logout removes the session and whatever checkout it was holding.
func (s *DefaultAuthService) Logout(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return nil
	}
	if s.Checkouts != nil {
		if err := s.Checkouts.Delete(ctx, sess.ID); err != nil {
			s.logger().Warn("Failed to clear checkout at logout", zap.String("sessionID", sess.ID), zap.Error(err))
		}
	}
	if err := s.Sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}
	s.logger().Info("Session ended", zap.String("sessionID", sess.ID))
	return nil
}
