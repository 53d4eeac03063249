package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	"github.com/pawmart/pawmart/internal/app"
	"github.com/pawmart/pawmart/internal/config"
	"github.com/pawmart/pawmart/internal/domain/repository"
	"github.com/pawmart/pawmart/internal/storage/postgres"
	"github.com/pawmart/pawmart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		StripeSecretKey:     "sk_test_stub",
		StripeWebhookSecret: "whsec_stub",
		CheckoutSuccessURL:  "https://shop.example/success",
		CheckoutCancelURL:   "https://shop.example/cancel",
		JWTSecret:           "secret",
		ShutdownTimeout:     time.Millisecond,
		PendingAlertAge:     time.Minute,
		PendingPollInterval: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.ProductRepository(test.NewProductRepositoryStub())),
			fx.Replace(repository.ServiceRepository(test.NewServiceRepositoryStub())),
			fx.Replace(repository.AppointmentRepository(test.NewAppointmentRepositoryStub())),
			fx.Replace(repository.CommentRepository(test.NewCommentRepositoryStub())),
			fx.Replace(repository.ContactRepository(test.NewContactRepositoryStub())),
			fx.Replace(payment.Gateway(&test.GatewayStub{})),
			fx.Replace(payment.EventVerifier(&test.VerifierStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}
}
