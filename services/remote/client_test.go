package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"aspcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureRecorder struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (r *captureRecorder) Record(_ context.Context, e models.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *captureRecorder) last() models.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[len(r.entries)-1]
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *captureRecorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	rec := &captureRecorder{}
	return NewClient(srv.URL+"/", 2*time.Second, zap.NewNop(), rec), rec
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestGetRate_SendsQueryAndBearer(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rates", r.URL.Path)
		assert.Equal(t, "SEDAN", r.URL.Query().Get("vehicleType"))
		assert.Equal(t, "FOAM", r.URL.Query().Get("washLevel"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"amount": 600, "currency": "INR"})
	})

	ctx := WithSessionID(context.Background(), "s1")
	rate, err := client.GetRate(ctx, "tok", "SEDAN", "FOAM")
	require.NoError(t, err)
	assert.Equal(t, 600.0, rate.Amount)

	entry := rec.last()
	assert.Equal(t, "s1", entry.SessionID)
	assert.Equal(t, OutcomeOK, entry.Outcome)
	assert.Equal(t, http.StatusOK, entry.Status)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		check   func(error) bool
		outcome string
	}{
		{"not found", http.StatusNotFound, nil, IsNotFound, OutcomeNotFound},
		{"server error", http.StatusInternalServerError, map[string]string{"message": "db down"}, IsRequestFailed, OutcomeFailed},
		{"unauthorized", http.StatusUnauthorized, map[string]string{"error": "expired"}, IsRequestFailed, OutcomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})
			_, err := client.GetRate(context.Background(), "tok", "SEDAN", "FOAM")
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.outcome, rec.last().Outcome)
		})
	}
}

func TestClient_UpstreamMessageExtracted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "db down"})
	})
	_, err := client.GetRate(context.Background(), "tok", "SEDAN", "FOAM")

	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, http.StatusBadGateway, rf.Status)
	assert.Equal(t, "db down", rf.Message)
}

func TestClient_NetworkAndCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &captureRecorder{}
	client := NewClient(url, time.Second, zap.NewNop(), rec)
	_, err := client.GetRate(context.Background(), "tok", "SEDAN", "FOAM")
	assert.True(t, IsNetwork(err))
	assert.Equal(t, OutcomeNetwork, rec.last().Outcome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.GetRate(ctx, "tok", "SEDAN", "FOAM")
	assert.True(t, IsCancelled(err))
	assert.Equal(t, OutcomeCancelled, rec.last().Outcome)
}

func TestClient_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	})
	_, err := client.GetRate(context.Background(), "tok", "SEDAN", "FOAM")
	assert.True(t, IsRequestFailed(err))
}

func TestDecodeList(t *testing.T) {
	list, err := decodeList[models.Booking]([]byte(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = decodeList[models.Booking]([]byte(` {"id":7} `))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)

	list, err = decodeList[models.Booking]([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, list)

	_, err = decodeList[models.Booking]([]byte("[{"))
	assert.True(t, IsRequestFailed(err))
}

func TestHasBookings_OnlyNonEmptyArrayCounts(t *testing.T) {
	bodies := map[string]string{
		"1111111111": `[{"id":1}]`,
		"2222222222": `[]`,
		"3333333333": `{"id":3}`,
		"4444444444": `null`,
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/by-phone", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bodies[r.URL.Query().Get("phone")]))
	})

	tests := []struct {
		phone string
		want  bool
	}{
		{"1111111111", true},
		{"2222222222", false},
		{"3333333333", false},
		{"4444444444", false},
	}
	for _, tt := range tests {
		got, err := client.HasBookings(context.Background(), "tok", tt.phone)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.phone)
	}
}

func TestRescheduleBooking_EchoIsOptional(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		if r.URL.Path == "/bookings/7" {
			writeJSON(w, http.StatusOK, map[string]any{"id": 7, "bookingDate": "2026-01-21"})
			return
		}
		_, _ = w.Write([]byte(`"Booking rescheduled"`))
	})
	req := models.RescheduleRequest{BookingDate: "2026-01-21", TimeSlot: "09:00-10:00"}

	b, err := client.RescheduleBooking(context.Background(), "tok", 7, req)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "2026-01-21", b.BookingDate)

	b, err = client.RescheduleBooking(context.Background(), "tok", 8, req)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestAuth_TokenShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      any
		wantToken string
		wantName  string
	}{
		{"data string", map[string]any{"success": true, "data": "t1"}, "t1", ""},
		{"data object", map[string]any{"success": true, "data": map[string]string{"token": "t2", "firstName": "Asha"}}, "t2", "Asha"},
		{"top-level token", map[string]any{"success": true, "token": "t3"}, "t3", ""},
		{"jwt field", map[string]any{"success": true, "jwt": "t4"}, "t4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/verify-otp", r.URL.Path)
				writeJSON(w, http.StatusOK, tt.body)
			})
			login, err := client.VerifyOTP(context.Background(), "9876543210", "123456")
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, login.Token)
			assert.Equal(t, tt.wantName, login.FirstName)
			assert.Equal(t, "9876543210", login.Phone)
		})
	}
}

func TestAuth_UnsuccessfulIsRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false})
	})
	_, err := client.VerifyOTP(context.Background(), "9876543210", "000000")

	var rf *RequestFailedError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, http.StatusOK, rf.Status)
	assert.Equal(t, "OTP verification failed. Please try again.", rf.Message)
}

func TestValidateCoupon_ClientErrorVerdict(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"valid": false, "message": "Coupon expired"})
	})
	v, err := client.ValidateCoupon(context.Background(), "tok", models.CouponValidateRequest{CouponCode: "OLD"})
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, "Coupon expired", v.Message)
}

func TestValidateCoupon_ServerErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"valid": false})
	})
	_, err := client.ValidateCoupon(context.Background(), "tok", models.CouponValidateRequest{CouponCode: "X"})
	assert.True(t, IsRequestFailed(err))
}
