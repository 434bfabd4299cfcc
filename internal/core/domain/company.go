package domain

import "time"

// CompanyProfile is the single document describing the business itself.
// It is created with defaults on first read and only rewritten by
// elevated-role users.
type CompanyProfile struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address" bson:"address"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	TaxNumber string    `json:"tax_number,omitempty" bson:"tax_number,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
