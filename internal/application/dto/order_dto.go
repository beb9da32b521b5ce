package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest payload de creación de orden pendiente.
type CreateOrderRequest struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Notes        string            `json:"notes"`
	Date         string            `json:"date"`
	Items        []LineItemPayload `json:"items"`
	Total        decimal.Decimal   `json:"total"`
	Status       string            `json:"status"`
}

// OrderResponse orden pendiente expuesta al frontend.
type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Notes        string             `json:"notes"`
	Date         string             `json:"date"`
	Items        []LineItemResponse `json:"items"`
	Total        decimal.Decimal    `json:"total"`
	Status       string             `json:"status"`
}
