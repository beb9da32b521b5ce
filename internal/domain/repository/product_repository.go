package repository

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// DecrementStock debe ser una operación atómica a nivel de store
// (un solo UPDATE condicional), nunca un read-modify-write en la aplicación.
// Todas las operaciones respetan la cancelación del contexto: una espera por
// conexión que agote el deadline se reporta como ErrStorageUnavailable.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int) error
}
