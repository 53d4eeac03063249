package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	testhelpers "github.com/pawmart/pawmart/internal/test"
)

func TestCatalogUseCaseProducts(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	uc := NewCatalogUseCase(products, testhelpers.NewServiceRepositoryStub())
	ctx := context.Background()

	toy, err := uc.CreateProduct(ctx, model.Product{Name: "Chew Toy", Category: "toys", Price: 1500})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if toy.ID == "" {
		t.Fatal("expected generated product id")
	}
	if _, err := uc.CreateProduct(ctx, model.Product{Name: "Kibble", Category: "food", Price: 4000}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	all, err := uc.Products(ctx, "")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two products, got %d", len(all))
	}

	toys, err := uc.Products(ctx, "toys")
	if err != nil {
		t.Fatalf("filtered list returned error: %v", err)
	}
	if len(toys) != 1 || toys[0].ID != toy.ID {
		t.Fatalf("unexpected category filter result %+v", toys)
	}

	toy.Price = 1800
	updated, err := uc.UpdateProduct(ctx, *toy)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Price != 1800 {
		t.Fatalf("price not updated: %d", updated.Price)
	}

	if err := uc.DeleteProduct(ctx, toy.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := uc.Product(ctx, toy.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCatalogUseCaseUpdateMissingProduct(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.NewProductRepositoryStub(), testhelpers.NewServiceRepositoryStub())
	if _, err := uc.UpdateProduct(context.Background(), model.Product{ID: "ghost", Name: "x"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogUseCaseServices(t *testing.T) {
	services := testhelpers.NewServiceRepositoryStub()
	uc := NewCatalogUseCase(testhelpers.NewProductRepositoryStub(), services)
	ctx := context.Background()

	grooming, err := uc.CreateService(ctx, model.Service{Name: "Grooming", Price: 4500, DurationMinutes: 45})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if grooming.ID == "" {
		t.Fatal("expected generated service id")
	}

	listed, err := uc.Services(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one service, got %d", len(listed))
	}

	if err := uc.DeleteService(ctx, grooming.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := uc.Service(ctx, grooming.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
