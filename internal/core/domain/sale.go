package domain

import "time"

// SaleItem is one line of a sale. Name and unit price are snapshots taken
// when the sale is posted; the line total is carried as supplied by the
// caller rather than recomputed from price and quantity.
type SaleItem struct {
	ProductID    string  `json:"product_id" bson:"product_id"`
	ProductName  string  `json:"product_name" bson:"product_name"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	SellingPrice float64 `json:"selling_price" bson:"selling_price"`
	TotalAmount  float64 `json:"total_amount" bson:"total_amount"`
}

// Sale is an immutable record of a posted transaction. There is no update
// or delete path once it is written.
type Sale struct {
	ID           string     `json:"id" bson:"id"`
	CustomerID   string     `json:"customer_id" bson:"customer_id"`
	CustomerName string     `json:"customer_name" bson:"customer_name"`
	Items        []SaleItem `json:"items" bson:"items"`
	TotalAmount  float64    `json:"total_amount" bson:"total_amount"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}
