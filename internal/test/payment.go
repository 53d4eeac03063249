package test

import (
	"context"
	"sync"

	"github.com/pawmart/pawmart/internal/adapter/payment"
)

// GatewayStub records checkout session requests made during tests.
type GatewayStub struct {
	CreateFn func(context.Context, payment.SessionRequest) (*payment.Session, error)

	mu    sync.Mutex
	Calls []payment.SessionRequest
}

// CreateCheckoutSession tracks the request and returns a canned session.
func (s *GatewayStub) CreateCheckoutSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, req)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &payment.Session{ID: "sess_test", URL: "https://checkout.example/sess_test"}, nil
}

// CallCount reports how many sessions were requested.
func (s *GatewayStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// VerifierStub resolves webhook payloads without real signature checks.
type VerifierStub struct {
	VerifyFn func([]byte, string) (*payment.Event, error)
	Event    *payment.Event
	Err      error
}

// Verify returns the configured event or delegates to the override.
func (s *VerifierStub) Verify(body []byte, signature string) (*payment.Event, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(body, signature)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Event != nil {
		return s.Event, nil
	}
	return &payment.Event{Type: payment.EventCheckoutCompleted, Reference: "ref", Paid: true}, nil
}

var _ payment.Gateway = (*GatewayStub)(nil)
var _ payment.EventVerifier = (*VerifierStub)(nil)
