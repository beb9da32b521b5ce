package repository

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// PendingOrderRepository define el puerto de persistencia para PendingOrder (DIP).
type PendingOrderRepository interface {
	Create(ctx context.Context, order *entity.PendingOrder) error
	List(ctx context.Context) ([]*entity.PendingOrder, error)
	Delete(ctx context.Context, id string) error
}
