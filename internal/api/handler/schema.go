package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a destructive operation.
type messageResponse struct {
	Message string `json:"message"`
}

// contactRequest is the writable view of a vendor or customer.
type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
}

type productRequest struct {
	Name          string  `json:"name"           validate:"required"`
	VendorID      string  `json:"vendor_id"      validate:"required"`
	Quantity      int     `json:"quantity"       validate:"gte=0"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
	SellingPrice  float64 `json:"selling_price"  validate:"gte=0"`
}

type saleItemRequest struct {
	ProductID    string  `json:"product_id"    validate:"required"`
	Quantity     int     `json:"quantity"      validate:"required,gt=0"`
	SellingPrice float64 `json:"selling_price" validate:"gte=0"`
	TotalAmount  float64 `json:"total_amount"  validate:"gte=0"`
}

type createSaleRequest struct {
	CustomerID string            `json:"customer_id" validate:"required"`
	Items      []saleItemRequest `json:"items"       validate:"required,min=1,dive"`
}

type companyRequest struct {
	Name      string `json:"name"    validate:"required"`
	Address   string `json:"address" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"      validate:"omitempty,email"`
	TaxNumber string `json:"tax_number"`
}
