package service

import (
	"context"
	"fmt"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// ReportService computes the stock valuation and dashboard projections.
// Every call recomputes from current persisted state; nothing is cached.
type ReportService struct {
	products  ports.ProductRepository
	sales     ports.SaleRepository
	vendors   ports.VendorRepository
	customers ports.CustomerRepository
}

func NewReportService(
	products ports.ProductRepository,
	sales ports.SaleRepository,
	vendors ports.VendorRepository,
	customers ports.CustomerRepository,
) *ReportService {
	return &ReportService{
		products:  products,
		sales:     sales,
		vendors:   vendors,
		customers: customers,
	}
}

func (s *ReportService) Stock(ctx context.Context) (*ports.StockReport, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}

	report := &ports.StockReport{Products: make([]ports.StockLine, 0, len(products))}
	for _, p := range products {
		value := p.StockValue()
		report.Products = append(report.Products, ports.StockLine{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Quantity:      p.Quantity,
			PurchasePrice: p.PurchasePrice,
			SellingPrice:  p.SellingPrice,
			StockValue:    value,
		})
		report.TotalStockValue += value
	}
	return report, nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	vendors, err := s.vendors.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count vendors: %w", err)
	}
	customers, err := s.customers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count customers: %w", err)
	}
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count products: %w", err)
	}

	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list sales: %w", err)
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list products: %w", err)
	}

	stats := &ports.DashboardStats{
		VendorsCount:   vendors,
		CustomersCount: customers,
		ProductsCount:  productCount,
		MonthlySales:   make(map[string]float64),
	}

	for _, sale := range sales {
		stats.TotalSales += sale.TotalAmount
		month := sale.CreatedAt.UTC().Format("2006-01")
		stats.MonthlySales[month] += sale.TotalAmount
	}

	for _, p := range products {
		stats.TotalStockValue += p.StockValue()
	}
	// Purchase value and stock value coincide: both price inventory at cost.
	stats.TotalPurchaseValue = stats.TotalStockValue

	return stats, nil
}
