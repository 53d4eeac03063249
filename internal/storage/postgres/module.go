package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/pawmart/pawmart/internal/config"
	"github.com/pawmart/pawmart/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.ServiceRepository { return s.Services() },
		func(s *Storage) repository.AppointmentRepository { return s.Appointments() },
		func(s *Storage) repository.CommentRepository { return s.Comments() },
		func(s *Storage) repository.ContactRepository { return s.Contacts() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
