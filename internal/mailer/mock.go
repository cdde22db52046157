package mailer

import (
	"context"
	"sync"
	"time"
)

// MockService is a mock implementation of Service for development/testing.
type MockService struct {
	// SimulatedDelay is the time to simulate email delivery.
	SimulatedDelay time.Duration
	// Err is returned by SendInvitation when set, for testing retry logic.
	Err error

	mu   sync.Mutex
	sent []Invitation
}

// NewMockService creates a new MockService with default settings.
func NewMockService() *MockService {
	return &MockService{}
}

// SendInvitation records the invitation instead of sending it.
func (s *MockService) SendInvitation(ctx context.Context, inv Invitation) error {
	if s.SimulatedDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.SimulatedDelay):
		}
	}

	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, inv)
	return nil
}

// Sent returns a copy of the invitations recorded so far.
func (s *MockService) Sent() []Invitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Invitation, len(s.sent))
	copy(out, s.sent)
	return out
}
