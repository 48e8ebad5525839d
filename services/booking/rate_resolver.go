package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"aspcare/models"
	"aspcare/services/remote"
	"aspcare/utils"

	"go.uber.org/zap"
)

// RateFetcher looks up the base rate for a vehicle and wash level.
type RateFetcher interface {
	GetRate(ctx context.Context, token, vehicleType, washLevel string) (*models.Rate, error)
}

type inflightRate struct {
	id     uint64
	cancel context.CancelFunc
}

// RateResolver quotes prices and keeps at most one lookup in flight per key.
// Starting a lookup cancels the previous one for the same key, and a lookup that
// finishes after being replaced reports ErrSuperseded instead of its result.
type RateResolver struct {
	Fetcher         RateFetcher
	DefaultCurrency string
	Logger          *zap.Logger

	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightRate
}

func NewRateResolver(fetcher RateFetcher, defaultCurrency string, logger *zap.Logger) *RateResolver {
	if defaultCurrency == "" {
		defaultCurrency = utils.DefaultCurrency
	}
	return &RateResolver{
		Fetcher:         fetcher,
		DefaultCurrency: defaultCurrency,
		Logger:          logger,
		inflight:        make(map[string]inflightRate),
	}
}

func (r *RateResolver) begin(ctx context.Context, key string) (context.Context, uint64) {
	callCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inflight == nil {
		r.inflight = make(map[string]inflightRate)
	}
	if prev, ok := r.inflight[key]; ok {
		prev.cancel()
	}
	r.seq++
	r.inflight[key] = inflightRate{id: r.seq, cancel: cancel}
	return callCtx, r.seq
}

func (r *RateResolver) current(key string, id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.inflight[key]
	return ok && c.id == id
}

func (r *RateResolver) finish(key string, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.inflight[key]; ok && c.id == id {
		c.cancel()
		delete(r.inflight, key)
	}
}

// Resolve quotes sel for the caller identified by key (the session ID).
func (r *RateResolver) Resolve(ctx context.Context, key, token string, sel models.RateSelection) (*models.RateQuote, error) {
	vehicleType, ok := NormalizeVehicleType(sel.VehicleType)
	if !ok {
		return nil, NewValidationError("vehicleType", "Please select a vehicle type")
	}
	washType, ok := ParseWashType(sel.WashType)
	if !ok {
		return nil, NewValidationError("washType", "Please select a wash type")
	}
	sel.VehicleType = vehicleType
	sel.WashType = string(washType)

	callCtx, id := r.begin(ctx, key)
	defer r.finish(key, id)

	rate, err := r.Fetcher.GetRate(callCtx, token, vehicleType, washType.Level())
	if !r.current(key, id) {
		if r.Logger != nil {
			r.Logger.Debug("rate lookup superseded", zap.String("key", key), zap.Uint64("request", id))
		}
		return nil, ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return &models.RateQuote{
				Selection: sel,
				Found:     false,
				Display:   "N/A",
				Message:   "Rate not found",
			}, nil
		}
		return nil, err
	}
	if rate.Amount < 0 {
		return nil, &remote.RequestFailedError{Status: 200, Message: "rate amount is negative"}
	}

	currency := strings.ToUpper(strings.TrimSpace(rate.Currency))
	if currency == "" {
		currency = r.DefaultCurrency
	}
	amount := rate.Amount
	final := FinalPrice(amount, sel.WaterOption)
	return &models.RateQuote{
		Selection:  sel,
		Found:      true,
		RateAmount: &amount,
		FinalPrice: &final,
		Currency:   currency,
		Display:    utils.FormatAmount(final, currency),
	}, nil
}
