package repository

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
}
