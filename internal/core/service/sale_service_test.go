package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

type stubSaleRepo struct {
	sales     []*domain.Sale
	insertErr error
}

func (r *stubSaleRepo) Insert(_ context.Context, s *domain.Sale) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*domain.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (r *stubSaleRepo) List(_ context.Context) ([]*domain.Sale, error) {
	return r.sales, nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		copy := *p
		r.products[p.ID] = &copy
	}
	return r
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) error {
	copy := *p
	r.products[p.ID] = &copy
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		copy := *p
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubProductRepo) Replace(_ context.Context, id string, p *domain.Product) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	copy := *p
	r.products[id] = &copy
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) DecrementQuantity(_ context.Context, id string, n int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Quantity < n {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= n
	return nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
}

func newStubCustomerRepo(customers ...*domain.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
	for _, c := range customers {
		copy := *c
		r.customers[c.ID] = &copy
	}
	return r
}

func (r *stubCustomerRepo) Insert(_ context.Context, c *domain.Customer) error {
	copy := *c
	r.customers[c.ID] = &copy
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubCustomerRepo) Replace(_ context.Context, id string, c *domain.Customer) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	copy := *c
	r.customers[id] = &copy
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

type stubReplayStore struct {
	entries   map[string]string
	lookupErr error
	lookups   int
}

func newStubReplayStore() *stubReplayStore {
	return &stubReplayStore{entries: make(map[string]string)}
}

func (s *stubReplayStore) Lookup(_ context.Context, key string) (string, error) {
	s.lookups++
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	return s.entries[key], nil
}

func (s *stubReplayStore) Remember(_ context.Context, key, saleID string) error {
	s.entries[key] = saleID
	return nil
}

func newSaleFixture() (*SaleService, *stubSaleRepo, *stubProductRepo, *stubCustomerRepo, *stubReplayStore) {
	sales := &stubSaleRepo{}
	products := newStubProductRepo(
		&domain.Product{ID: "p1", Name: "Widget", Quantity: 100, PurchasePrice: 50, SellingPrice: 75},
		&domain.Product{ID: "p2", Name: "Gadget", Quantity: 3, PurchasePrice: 20, SellingPrice: 30},
	)
	customers := newStubCustomerRepo(
		&domain.Customer{ID: "c1", Name: "Acme Corp"},
	)
	replay := newStubReplayStore()
	svc := NewSaleService(sales, products, customers, replay, zerolog.Nop())
	return svc, sales, products, customers, replay
}

func TestSaleService_PostSale_Success(t *testing.T) {
	svc, sales, products, _, _ := newSaleFixture()

	sale, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "c1",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 5, SellingPrice: 75, TotalAmount: 375},
		},
	})
	if err != nil {
		t.Fatalf("PostSale returned error: %v", err)
	}
	if sale.ID == "" {
		t.Fatalf("expected generated sale id")
	}
	if sale.CustomerName != "Acme Corp" {
		t.Fatalf("expected denormalized customer name, got %q", sale.CustomerName)
	}
	if sale.TotalAmount != 375 {
		t.Fatalf("expected total 375, got %v", sale.TotalAmount)
	}
	if sale.Items[0].ProductName != "Widget" {
		t.Fatalf("expected product name snapshot, got %q", sale.Items[0].ProductName)
	}

	if got := products.products["p1"].Quantity; got != 95 {
		t.Fatalf("expected stock 95 after deduction, got %d", got)
	}
	if len(sales.sales) != 1 {
		t.Fatalf("expected 1 persisted sale, got %d", len(sales.sales))
	}
}

func TestSaleService_PostSale_MultiItem(t *testing.T) {
	svc, _, products, _, _ := newSaleFixture()

	sale, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "c1",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 2, SellingPrice: 75, TotalAmount: 150},
			{ProductID: "p2", Quantity: 1, SellingPrice: 30, TotalAmount: 30},
		},
	})
	if err != nil {
		t.Fatalf("PostSale returned error: %v", err)
	}
	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sale.Items))
	}
	if sale.Items[0].ProductID != "p1" || sale.Items[1].ProductID != "p2" {
		t.Fatalf("expected items in supplied order, got %+v", sale.Items)
	}
	if sale.TotalAmount != 180 {
		t.Fatalf("expected total 180, got %v", sale.TotalAmount)
	}
	if products.products["p1"].Quantity != 98 || products.products["p2"].Quantity != 2 {
		t.Fatalf("unexpected stock after multi-item sale")
	}
}

func TestSaleService_PostSale_UnknownCustomer(t *testing.T) {
	svc, _, products, _, _ := newSaleFixture()

	_, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "missing",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 1, TotalAmount: 75},
		},
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	// No stock moves before the customer resolves.
	if products.products["p1"].Quantity != 100 {
		t.Fatalf("expected untouched stock, got %d", products.products["p1"].Quantity)
	}
}

func TestSaleService_PostSale_UnknownProduct(t *testing.T) {
	svc, sales, _, _, _ := newSaleFixture()

	_, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "c1",
		Items: []ports.SaleItemInput{
			{ProductID: "missing", Quantity: 1, TotalAmount: 10},
		},
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if len(sales.sales) != 0 {
		t.Fatalf("expected no sale persisted")
	}
}

func TestSaleService_PostSale_InsufficientStock(t *testing.T) {
	svc, sales, products, _, _ := newSaleFixture()

	_, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "c1",
		Items: []ports.SaleItemInput{
			{ProductID: "p2", Quantity: 10, SellingPrice: 30, TotalAmount: 300},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !strings.Contains(err.Error(), "Gadget") {
		t.Fatalf("expected error to name the product, got %q", err.Error())
	}
	if products.products["p2"].Quantity != 3 {
		t.Fatalf("expected stock untouched on failed guard, got %d", products.products["p2"].Quantity)
	}
	if len(sales.sales) != 0 {
		t.Fatalf("expected no sale persisted")
	}
}

func TestSaleService_PostSale_PartialDeductionStands(t *testing.T) {
	svc, sales, products, _, _ := newSaleFixture()

	// First line succeeds, second fails the stock guard. The first
	// deduction is not rolled back but no sale record is written.
	_, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID: "c1",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 5, SellingPrice: 75, TotalAmount: 375},
			{ProductID: "p2", Quantity: 10, SellingPrice: 30, TotalAmount: 300},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := products.products["p1"].Quantity; got != 95 {
		t.Fatalf("expected earlier deduction to stand (95), got %d", got)
	}
	if got := products.products["p2"].Quantity; got != 3 {
		t.Fatalf("expected failed line untouched (3), got %d", got)
	}
	if len(sales.sales) != 0 {
		t.Fatalf("expected no sale persisted")
	}
}

func TestSaleService_PostSale_IdempotentReplay(t *testing.T) {
	svc, sales, products, _, replay := newSaleFixture()

	in := ports.PostSaleInput{
		CustomerID:     "c1",
		IdempotencyKey: "req-42",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 5, SellingPrice: 75, TotalAmount: 375},
		},
	}

	first, err := svc.PostSale(context.Background(), in)
	if err != nil {
		t.Fatalf("first PostSale failed: %v", err)
	}
	if replay.entries["req-42"] != first.ID {
		t.Fatalf("expected replay key recorded")
	}

	second, err := svc.PostSale(context.Background(), in)
	if err != nil {
		t.Fatalf("replayed PostSale failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same sale on replay, got %s and %s", first.ID, second.ID)
	}
	if got := products.products["p1"].Quantity; got != 95 {
		t.Fatalf("expected no second deduction, stock %d", got)
	}
	if len(sales.sales) != 1 {
		t.Fatalf("expected a single persisted sale, got %d", len(sales.sales))
	}
}

func TestSaleService_PostSale_ReplayStoreDown(t *testing.T) {
	svc, sales, _, _, replay := newSaleFixture()
	replay.lookupErr = errors.New("connection refused")

	// A broken replay store must not block posting.
	sale, err := svc.PostSale(context.Background(), ports.PostSaleInput{
		CustomerID:     "c1",
		IdempotencyKey: "req-7",
		Items: []ports.SaleItemInput{
			{ProductID: "p1", Quantity: 1, SellingPrice: 75, TotalAmount: 75},
		},
	})
	if err != nil {
		t.Fatalf("PostSale failed: %v", err)
	}
	if sale == nil || len(sales.sales) != 1 {
		t.Fatalf("expected sale to be posted despite replay store failure")
	}
}

func TestSaleService_List(t *testing.T) {
	svc, sales, _, _, _ := newSaleFixture()
	sales.sales = append(sales.sales, &domain.Sale{ID: "s1"}, &domain.Sale{ID: "s2"})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(got))
	}
}
