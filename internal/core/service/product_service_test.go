package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

func newProductFixture() (*ProductService, *stubProductRepo, *stubVendorRepo) {
	products := newStubProductRepo()
	vendors := newStubVendorRepo(&domain.Vendor{ID: "v1", Name: "Acme Supplies"})
	svc := NewProductService(products, vendors, zerolog.Nop())
	return svc, products, vendors
}

func TestProductService_Create(t *testing.T) {
	svc, repo, _ := newProductFixture()

	product, err := svc.Create(context.Background(), ports.ProductInput{
		Name: "Widget", VendorID: "v1", Quantity: 10, PurchasePrice: 50, SellingPrice: 75,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, ok := repo.products[product.ID]; !ok {
		t.Fatalf("expected product persisted")
	}
}

func TestProductService_Create_UnknownVendor(t *testing.T) {
	svc, repo, _ := newProductFixture()

	_, err := svc.Create(context.Background(), ports.ProductInput{
		Name: "Widget", VendorID: "missing", Quantity: 10,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if len(repo.products) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestProductService_Update(t *testing.T) {
	svc, repo, _ := newProductFixture()
	repo.products["p1"] = &domain.Product{ID: "p1", Name: "Widget", VendorID: "v1", Quantity: 10}

	product, err := svc.Update(context.Background(), "p1", ports.ProductInput{
		Name: "Widget Mk2", VendorID: "v1", Quantity: 4, PurchasePrice: 60, SellingPrice: 90,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if product.Quantity != 4 {
		t.Fatalf("expected replaced quantity 4, got %d", product.Quantity)
	}
	if repo.products["p1"].Name != "Widget Mk2" {
		t.Fatalf("expected replacement persisted")
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, _, _ := newProductFixture()

	_, err := svc.Update(context.Background(), "missing", ports.ProductInput{
		Name: "x", VendorID: "v1",
	})
	if err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newProductFixture()

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
