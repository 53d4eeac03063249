package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	"github.com/pawmart/pawmart/internal/config"
	"github.com/pawmart/pawmart/internal/domain/repository"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newOrderUseCase,
	NewCatalogUseCase,
	NewAppointmentUseCase,
	NewEngagementUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Hasher   pkgAuth.PasswordHasher
	Strategy pkgAuth.Strategy
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Hasher, p.Strategy, p.Config.AdminEmail)
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Gateway  payment.Gateway
	Verifier payment.EventVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Gateway, p.Verifier, p.Config.CheckoutSuccessURL, p.Config.CheckoutCancelURL, p.Logger)
}
