package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

const signingSecret = "whsec_test_secret"

func signPayload(t *testing.T, payload []byte, secret string, at time.Time) string {
	t.Helper()
	ts := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedPayload(reference string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"api_version": "2024-01-01",
		"data": {
			"object": {
				"id": "cs_test_1",
				"client_reference_id": %q,
				"payment_status": "paid",
				"payment_intent": {
					"id": "pi_1",
					"latest_charge": {"id": "ch_1", "receipt_url": "https://pay.stripe.test/receipt/1"}
				}
			}
		}
	}`, reference))
}

func TestNewStripeVerifierRequiresSecret(t *testing.T) {
	if _, err := NewStripeVerifier(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestVerifyCheckoutCompleted(t *testing.T) {
	verifier, err := NewStripeVerifier(signingSecret)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	payload := checkoutCompletedPayload("ref-42")
	event, err := verifier.Verify(payload, signPayload(t, payload, signingSecret, time.Now()))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if event.Type != EventCheckoutCompleted {
		t.Fatalf("unexpected type %q", event.Type)
	}
	if event.Reference != "ref-42" {
		t.Fatalf("unexpected reference %q", event.Reference)
	}
	if !event.Paid {
		t.Fatal("expected paid event")
	}
	if event.ReceiptURL != "https://pay.stripe.test/receipt/1" {
		t.Fatalf("unexpected receipt url %q", event.ReceiptURL)
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	verifier, _ := NewStripeVerifier(signingSecret)
	payload := checkoutCompletedPayload("ref-42")

	cases := []struct {
		name      string
		signature string
	}{
		{"missing", ""},
		{"garbage", "t=1,v1=deadbeef"},
		{"wrong secret", signPayload(t, payload, "whsec_other", time.Now())},
		{"stale timestamp", signPayload(t, payload, signingSecret, time.Now().Add(-time.Hour))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := verifier.Verify(payload, tc.signature); !errors.Is(err, ErrBadSignature) {
				t.Fatalf("expected ErrBadSignature, got %v", err)
			}
		})
	}
}

func TestVerifyIgnoresOtherEventTypes(t *testing.T) {
	verifier, _ := NewStripeVerifier(signingSecret)
	payload := []byte(`{"id":"evt_2","type":"invoice.created","api_version":"2024-01-01","data":{"object":{}}}`)

	event, err := verifier.Verify(payload, signPayload(t, payload, signingSecret, time.Now()))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if event.Type != "invoice.created" {
		t.Fatalf("unexpected type %q", event.Type)
	}
	if event.Reference != "" || event.Paid {
		t.Fatalf("expected empty reference and unpaid, got %+v", event)
	}
}

func TestVerifyWithoutExpandedIntentLeavesReceiptEmpty(t *testing.T) {
	verifier, _ := NewStripeVerifier(signingSecret)
	payload := []byte(`{
		"id": "evt_3",
		"type": "checkout.session.completed",
		"api_version": "2024-01-01",
		"data": {"object": {"id": "cs_2", "client_reference_id": "ref-7", "payment_status": "paid"}}
	}`)

	event, err := verifier.Verify(payload, signPayload(t, payload, signingSecret, time.Now()))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if event.Reference != "ref-7" || !event.Paid {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.ReceiptURL != "" {
		t.Fatalf("expected empty receipt url, got %q", event.ReceiptURL)
	}
}
