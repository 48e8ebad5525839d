package mocks

import (
	"context"
	"sync"

	"aspcare/models"

	"github.com/stretchr/testify/mock"
)

// MemoryCheckoutStore keeps checkout state in a map.
type MemoryCheckoutStore struct {
	mu     sync.Mutex
	states map[string]models.CheckoutState
}

func NewMemoryCheckoutStore() *MemoryCheckoutStore {
	return &MemoryCheckoutStore{states: make(map[string]models.CheckoutState)}
}

func (s *MemoryCheckoutStore) Save(_ context.Context, st *models.CheckoutState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[st.SessionID] = *st
	return nil
}

func (s *MemoryCheckoutStore) Get(_ context.Context, sessionID string) (*models.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *MemoryCheckoutStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}

// MockIntentCreator is a mock implementation of payment.IntentCreator
type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) Create(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentIntent), args.Error(1)
}
