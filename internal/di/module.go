package di

import (
	"go.uber.org/fx"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	"github.com/pawmart/pawmart/internal/app"
	"github.com/pawmart/pawmart/internal/config"
	"github.com/pawmart/pawmart/internal/logger"
	"github.com/pawmart/pawmart/internal/pkg/auth"
	"github.com/pawmart/pawmart/internal/server/http/handlers"
	"github.com/pawmart/pawmart/internal/server/http/router"
	"github.com/pawmart/pawmart/internal/storage/postgres"
	"github.com/pawmart/pawmart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
