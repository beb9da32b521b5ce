package entity

import "github.com/shopspring/decimal"

// Estados de una venta. Completed es el valor por defecto al registrar;
// transiciones posteriores (ej. reembolsos) las dirigen colaboradores externos.
const (
	SaleStatusCompleted = "completed"
	SaleStatusRefunded  = "refunded"
)

// Sale es el registro durable de una transacción. Inmutable una vez creada
// salvo el campo Status. Items es un snapshot independiente del estado actual
// de los productos.
type Sale struct {
	ID            string
	UserID        int64
	UserName      string
	PaymentMethod string
	Date          string // timestamp provisto por el caller, tratado como opaco
	Items         []LineItem
	Total         decimal.Decimal
	Status        string
}
