package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario con su stock actual.
// Stock nunca es negativo: los decrementos por venta hacen piso en cero.
type Product struct {
	ID       string
	Name     string
	Stock    int
	Price    decimal.Decimal
	Category string
	SKU      string
	ImageURL string
}
