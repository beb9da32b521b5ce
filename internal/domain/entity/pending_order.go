package entity

import "github.com/shopspring/decimal"

// Estados de una orden pendiente. El backend solo almacena y reporta el campo;
// la transición pending -> fulfilled | cancelled la decide el caller
// (cumplir una orden es una llamada aparte al registro de ventas).
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// PendingOrder es una orden aún no cobrada. No afecta inventario:
// solo el registro de la venta descuenta stock.
type PendingOrder struct {
	ID           string
	CustomerName string
	Notes        string
	Date         string // timestamp provisto por el caller, tratado como opaco
	Items        []LineItem
	Total        decimal.Decimal
	Status       string
}
