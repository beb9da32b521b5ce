package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de venta u orden: snapshot de producto, cantidad y precio unitario.
// No es una referencia viva: editar el producto después no altera ventas históricas.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
