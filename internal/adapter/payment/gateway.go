package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// ErrBadSignature indicates the webhook payload failed signature verification.
var ErrBadSignature = errors.New("webhook signature verification failed")

// LineItem is one priced position of a checkout session.
type LineItem struct {
	Name       string
	Category   string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

// SessionRequest carries everything needed to open a hosted checkout session.
// Reference is the locally generated correlation id; the gateway echoes it
// back in webhook events so the order can be matched without ever storing
// gateway-side identifiers up front.
type SessionRequest struct {
	Reference     string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Items         []LineItem
}

// Session is the gateway's answer: a hosted page the client redirects to.
type Session struct {
	ID  string
	URL string
}

// Gateway exposes hosted checkout session creation.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (*Session, error)
}

// StripeGateway implements Gateway via the Stripe API.
type StripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewStripeGateway creates a gateway bound to the given secret key.
func NewStripeGateway(secretKey string, logger *slog.Logger) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key must not be empty")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, logger: logger}, nil
}

// CreateCheckoutSession opens a hosted payment session for the cart.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req SessionRequest) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Category != "" {
			productData.Metadata = map[string]string{"category": item.Category}
		}
		if item.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.ImageURL})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.Reference),
		CustomerEmail:     stripe.String(req.CustomerEmail),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems:         lineItems,
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("stripe checkout session failed",
			slog.String("reference", req.Reference),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
