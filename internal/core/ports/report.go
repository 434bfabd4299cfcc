package ports

import "context"

// StockLine is the per-product row of the stock report.
type StockLine struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockValue    float64 `json:"stock_value"`
}

// StockReport values current inventory at purchase cost.
type StockReport struct {
	Products        []StockLine `json:"products"`
	TotalStockValue float64     `json:"total_stock_value"`
}

// DashboardStats aggregates counts and sale totals, including a month-keyed
// ("YYYY-MM") rollup of sale totals by creation month.
type DashboardStats struct {
	VendorsCount       int64              `json:"vendors_count"`
	CustomersCount     int64              `json:"customers_count"`
	ProductsCount      int64              `json:"products_count"`
	TotalSales         float64            `json:"total_sales"`
	TotalPurchaseValue float64            `json:"total_purchase_value"`
	TotalStockValue    float64            `json:"total_stock_value"`
	MonthlySales       map[string]float64 `json:"monthly_sales"`
}

// ReportService computes read-only projections over products and sales.
// Results always reflect current persisted state; nothing is cached.
type ReportService interface {
	Stock(ctx context.Context) (*StockReport, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
