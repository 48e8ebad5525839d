package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"aspcare/models"
	"aspcare/services/booking"
	"aspcare/services/remote"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUpstream struct {
	sendMsg   string
	login     *models.UpstreamLogin
	err       error
	lastPhone string
}

func (f *fakeUpstream) SendOTP(_ context.Context, mobile string) (string, error) {
	f.lastPhone = mobile
	return f.sendMsg, f.err
}

func (f *fakeUpstream) VerifyOTP(_ context.Context, mobile, _ string) (*models.UpstreamLogin, error) {
	f.lastPhone = mobile
	if f.err != nil {
		return nil, f.err
	}
	l := *f.login
	return &l, nil
}

func (f *fakeUpstream) GoogleLogin(_ context.Context, _ string) (*models.UpstreamLogin, error) {
	if f.err != nil {
		return nil, f.err
	}
	l := *f.login
	return &l, nil
}

type memorySessions struct {
	data map[string]models.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{data: map[string]models.Session{}}
}

func (m *memorySessions) Create(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = "sess-" + s.Phone
	}
	return m.Save(ctx, s)
}

func (m *memorySessions) Get(_ context.Context, id string) (*models.Session, error) {
	s, ok := m.data[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &s, nil
}

func (m *memorySessions) Save(_ context.Context, s *models.Session) error {
	m.data[s.ID] = *s
	return nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	delete(m.data, id)
	return nil
}

func (m *memorySessions) DismissBanner(ctx context.Context, id, _ string) (*models.Session, error) {
	return m.Get(ctx, id)
}

type recordingCheckouts struct {
	deleted []string
	err     error
}

func (r *recordingCheckouts) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return r.err
}

func newService(up UpstreamAuth, sessions session.Store, checkouts CheckoutDeleter) *DefaultAuthService {
	return &DefaultAuthService{
		Upstream:  up,
		Sessions:  sessions,
		Checkouts: checkouts,
		TokenTTL:  time.Hour,
		Logger:    zap.NewNop(),
	}
}

func TestSendOTP(t *testing.T) {
	up := &fakeUpstream{}
	svc := newService(up, newMemorySessions(), nil)

	msg, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "OTP sent successfully", msg)

	up.sendMsg = "OTP sent to your mobile"
	msg, err = svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "OTP sent to your mobile", msg)

	up.lastPhone = ""
	_, err = svc.SendOTP(context.Background(), "98765")
	assert.True(t, booking.IsValidation(err))
	assert.Empty(t, up.lastPhone)
}

func TestVerifyOTP_StartsBoundSession(t *testing.T) {
	utils.SetJWTSecret("auth-test-secret")
	sessions := newMemorySessions()
	up := &fakeUpstream{login: &models.UpstreamLogin{Token: "upstream-tok", FirstName: "Asha"}}
	svc := newService(up, sessions, nil)

	res, err := svc.VerifyOTP(context.Background(), "9876543210", "123456")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", res.Session.Phone)
	assert.NotEmpty(t, res.Token)
	assert.Greater(t, res.ExpiresAt, time.Now().Unix())

	id, err := utils.ExtractSessionID(res.Token)
	require.NoError(t, err)
	stored, err := sessions.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "upstream-tok", stored.UpstreamToken)
	assert.Equal(t, utils.HashToken(res.Token), stored.TokenHash)
}

func TestVerifyOTP_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLogin bool
		wantMsg   string
	}{
		{"wrong otp with message", &remote.RequestFailedError{Status: 400, Message: "OTP expired"}, true, "OTP expired"},
		{"refused without message", &remote.RequestFailedError{Status: 200}, true, "Invalid OTP"},
		{"server error passes through", &remote.RequestFailedError{Status: 502}, false, ""},
		{"network passes through", &remote.NetworkError{Op: "POST", Err: errors.New("offline")}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newMemorySessions()
			svc := newService(&fakeUpstream{err: tt.err}, sessions, nil)

			_, err := svc.VerifyOTP(context.Background(), "9876543210", "123456")
			require.Error(t, err)
			assert.Equal(t, tt.wantLogin, IsLoginError(err))
			if tt.wantLogin {
				assert.Equal(t, tt.wantMsg, err.Error())
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.Empty(t, sessions.data)
		})
	}
}

func TestVerifyOTP_Validation(t *testing.T) {
	svc := newService(&fakeUpstream{}, newMemorySessions(), nil)
	_, err := svc.VerifyOTP(context.Background(), "9876543210", "12ab56")
	assert.True(t, booking.IsValidation(err))
}

func TestGoogleLogin(t *testing.T) {
	utils.SetJWTSecret("auth-test-secret")
	svc := newService(&fakeUpstream{login: &models.UpstreamLogin{Token: "g-tok", Phone: "9123456780"}}, newMemorySessions(), nil)

	_, err := svc.GoogleLogin(context.Background(), "")
	assert.True(t, booking.IsValidation(err))

	res, err := svc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "9123456780", res.Session.Phone)
}

func TestLogout(t *testing.T) {
	sessions := newMemorySessions()
	checkouts := &recordingCheckouts{err: errors.New("redis down")}
	svc := newService(&fakeUpstream{}, sessions, checkouts)

	sess := &models.Session{ID: "s1", Phone: "9876543210"}
	require.NoError(t, sessions.Save(context.Background(), sess))

	require.NoError(t, svc.Logout(context.Background(), sess))
	assert.Equal(t, []string{"s1"}, checkouts.deleted)
	_, err := sessions.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.NoError(t, svc.Logout(context.Background(), nil))
}
