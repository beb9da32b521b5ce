package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. ID es opcional: si falta se genera un UUID.
type CreateProductRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	SKU      string          `json:"sku"`
	ImageURL string          `json:"imageUrl"`
}

// UpdateProductRequest actualización parcial (PATCH): solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	SKU      *string          `json:"sku"`
	ImageURL *string          `json:"imageUrl"`
}

// ProductResponse producto expuesto al frontend.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	SKU      string          `json:"sku"`
	ImageURL string          `json:"imageUrl"`
}
