package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/pawmart/pawmart/internal/config"
)

// Module exposes gateway and verifier implementations to the fx graph.
var Module = fx.Provide(newGateway, newVerifier)

type gatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGateway(p gatewayParams) (Gateway, error) {
	return NewStripeGateway(p.Config.StripeSecretKey, p.Logger)
}

func newVerifier(cfg *config.Config) (EventVerifier, error) {
	return NewStripeVerifier(cfg.StripeWebhookSecret)
}
