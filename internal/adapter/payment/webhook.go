package payment

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// EventCheckoutCompleted is the only event type that advances order state.
const EventCheckoutCompleted = string(stripe.EventTypeCheckoutSessionCompleted)

// Event is the verified, decoded subset of a gateway webhook notification.
type Event struct {
	Type       string
	Reference  string
	Paid       bool
	ReceiptURL string
}

// EventVerifier authenticates a raw webhook payload. Verification is
// computed over the exact byte stream, so callers must pass the unparsed
// request body.
type EventVerifier interface {
	Verify(payload []byte, signature string) (*Event, error)
}

// StripeVerifier checks Stripe webhook signatures with a shared secret.
type StripeVerifier struct {
	secret string
}

// NewStripeVerifier creates a verifier for the given signing secret.
func NewStripeVerifier(signingSecret string) (*StripeVerifier, error) {
	if signingSecret == "" {
		return nil, fmt.Errorf("webhook signing secret must not be empty")
	}
	return &StripeVerifier{secret: signingSecret}, nil
}

// Verify authenticates the payload and extracts checkout completion details.
func (v *StripeVerifier) Verify(payload []byte, signature string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	event := &Event{Type: string(stripeEvent.Type)}
	if event.Type != EventCheckoutCompleted {
		return event, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(stripeEvent.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	event.Reference = sess.ClientReferenceID
	event.Paid = sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	if sess.PaymentIntent != nil && sess.PaymentIntent.LatestCharge != nil {
		event.ReceiptURL = sess.PaymentIntent.LatestCharge.ReceiptURL
	}
	return event, nil
}
