package domain

import "time"

// Product is a stocked item. Quantity only changes through sale posting
// (conditional decrement) or an explicit product update, and is never
// negative after a committed operation.
type Product struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	VendorID      string    `json:"vendor_id" bson:"vendor_id"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	PurchasePrice float64   `json:"purchase_price" bson:"purchase_price"`
	SellingPrice  float64   `json:"selling_price" bson:"selling_price"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// StockValue is the purchase-cost valuation of the units on hand.
func (p *Product) StockValue() float64 {
	return float64(p.Quantity) * p.PurchasePrice
}
