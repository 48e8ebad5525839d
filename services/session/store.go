// File: services/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"aspcare/models"
	"aspcare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Banner names accepted by DismissBanner.
const (
	BannerOffers  = "offers"
	BannerUpgrade = "upgrade"
)

// Store persists login sessions.
type Store interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
	DismissBanner(ctx context.Context, id, banner string) (*models.Session, error)
}

// record is the stored form of a session; the upstream token is sealed.
type record struct {
	ID                     string    `json:"id"`
	Phone                  string    `json:"phone"`
	FirstName              string    `json:"firstName,omitempty"`
	SealedToken            string    `json:"sealedToken"`
	TokenHash              string    `json:"tokenHash,omitempty"`
	OffersBannerDismissed  bool      `json:"offersBannerDismissed"`
	UpgradeBannerDismissed bool      `json:"upgradeBannerDismissed"`
	CreatedAt              time.Time `json:"createdAt"`
	LastSeenAt             time.Time `json:"lastSeenAt"`
}

// RedisStore keeps sessions in Redis under utils.SessionPrefix.
type RedisStore struct {
	client *redis.Client
	sealer *utils.Sealer
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, sealer *utils.Sealer, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, sealer: sealer, ttl: ttl}
}

func key(id string) string {
	return utils.SessionPrefix + id
}

// Create assigns an ID (when empty) and timestamps, then saves the session.
func (r *RedisStore) Create(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.LastSeenAt = now
	return r.Save(ctx, s)
}

func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	sealed, err := r.sealer.Seal(s.UpstreamToken)
	if err != nil {
		return fmt.Errorf("failed to seal session token: %w", err)
	}
	rec := record{
		ID:                     s.ID,
		Phone:                  s.Phone,
		FirstName:              s.FirstName,
		SealedToken:            sealed,
		TokenHash:              s.TokenHash,
		OffersBannerDismissed:  s.OffersBannerDismissed,
		UpgradeBannerDismissed: s.UpgradeBannerDismissed,
		CreatedAt:              s.CreatedAt,
		LastSeenAt:             s.LastSeenAt,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, key(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	token, err := r.sealer.Open(rec.SealedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open session token: %w", err)
	}
	return &models.Session{
		ID:                     rec.ID,
		Phone:                  rec.Phone,
		FirstName:              rec.FirstName,
		UpstreamToken:          token,
		TokenHash:              rec.TokenHash,
		OffersBannerDismissed:  rec.OffersBannerDismissed,
		UpgradeBannerDismissed: rec.UpgradeBannerDismissed,
		CreatedAt:              rec.CreatedAt,
		LastSeenAt:             rec.LastSeenAt,
	}, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DismissBanner records that the offers or upgrade banner was closed for this session.
func (r *RedisStore) DismissBanner(ctx context.Context, id, banner string) (*models.Session, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(banner) {
	case BannerOffers:
		s.OffersBannerDismissed = true
	case BannerUpgrade:
		s.UpgradeBannerDismissed = true
	default:
		return nil, fmt.Errorf("unknown banner %q", banner)
	}
	if err := r.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
