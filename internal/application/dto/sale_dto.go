package dto

import "github.com/shopspring/decimal"

// LineItemPayload línea de venta u orden tal como llega del frontend.
// Algunas versiones del cliente mandan el producto en "productId" y otras en "id".
type LineItemPayload struct {
	ProductID string          `json:"productId"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ResolveProductID devuelve la referencia de producto de la línea, con "id" como fallback.
func (l LineItemPayload) ResolveProductID() string {
	if l.ProductID != "" {
		return l.ProductID
	}
	return l.ID
}

// CreateSaleRequest payload de registro de venta.
// Total viene calculado por el frontend y no se recalcula aquí.
type CreateSaleRequest struct {
	ID            string            `json:"id"`
	UserID        int64             `json:"userId"`
	UserName      string            `json:"userName"`
	PaymentMethod string            `json:"paymentMethod"`
	Date          string            `json:"date"`
	Items         []LineItemPayload `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status"`
}

// LineItemResponse línea dentro de una venta u orden persistida.
type LineItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SaleResponse venta expuesta al frontend.
type SaleResponse struct {
	ID            string             `json:"id"`
	UserID        int64              `json:"userId"`
	UserName      string             `json:"userName"`
	PaymentMethod string             `json:"paymentMethod"`
	Date          string             `json:"date"`
	Items         []LineItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
}
