package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aspcare/handlers"
	"aspcare/models"
	"aspcare/services/booking/mocks"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type oneSession struct {
	sess *models.Session
}

func (o oneSession) Get(_ context.Context, id string) (*models.Session, error) {
	if o.sess == nil || o.sess.ID != id {
		return nil, session.ErrNotFound
	}
	cp := *o.sess
	return &cp, nil
}

func newRouter(t *testing.T, bookings *mocks.MockBookingService) (*gin.Engine, string) {
	t.Helper()
	utils.SetJWTSecret("routes-test-secret")
	token, err := utils.GenerateSessionToken("s1", "9876543210", time.Hour)
	require.NoError(t, err)
	sessions := oneSession{sess: &models.Session{ID: "s1", Phone: "9876543210", TokenHash: utils.HashToken(token)}}

	// Only the booking handler is exercised past the middleware.
	hb := handlers.NewHandlerBundle(sessions,
		handlers.NewAuthHandler(nil, nil),
		handlers.NewBookingHandler(bookings),
		handlers.NewMembershipHandler(nil),
		handlers.NewDirectoryHandler(nil),
	)
	r := gin.New()
	RegisterRoutes(r, hb)
	return r, token
}

func TestHealthRoute(t *testing.T) {
	r, _ := newRouter(t, new(mocks.MockBookingService))
	utils.RunHealthChecks(context.Background(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aspcare")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newRouter(t, new(mocks.MockBookingService))

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/checkout"},
		{http.MethodGet, "/api/booking/slots"},
		{http.MethodGet, "/api/memberships/plans"},
		{http.MethodGet, "/api/deals"},
		{http.MethodGet, "/api/session"},
		{http.MethodPost, "/api/auth/logout"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestOrdersRouteWithSession(t *testing.T) {
	bookings := new(mocks.MockBookingService)
	bookings.On("ListOrders", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
		return s.ID == "s1"
	})).Return([]models.OrderView{}, nil)
	r, token := newRouter(t, bookings)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orders":[]}`, w.Body.String())
	bookings.AssertExpectations(t)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	listed := corsConfig([]string{"https://app.example.com"})
	assert.False(t, listed.AllowAllOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.Equal(t, []string{"https://app.example.com"}, listed.AllowOrigins)
}
