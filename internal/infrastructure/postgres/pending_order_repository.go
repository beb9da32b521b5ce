package postgres

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

var _ repository.PendingOrderRepository = (*PendingOrderRepo)(nil)

// PendingOrderRepo implementación del puerto PendingOrderRepository sobre PostgreSQL.
type PendingOrderRepo struct {
	q Querier
}

// NewPendingOrderRepository construye el adaptador de persistencia para órdenes pendientes.
func NewPendingOrderRepository(q Querier) *PendingOrderRepo {
	return &PendingOrderRepo{q: q}
}

// Create persiste una orden pendiente con sus líneas como snapshot JSONB.
func (r *PendingOrderRepo) Create(ctx context.Context, order *entity.PendingOrder) error {
	items, err := encodeItems(order.Items)
	if err != nil {
		return domain.ErrInvalidPayload
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO pending_orders (id, customer_name, notes, date, items, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		order.ID, order.CustomerName, order.Notes, order.Date,
		items, order.Total, order.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert pending order", err)
	}
	return nil
}

// List devuelve todas las órdenes pendientes.
func (r *PendingOrderRepo) List(ctx context.Context) ([]*entity.PendingOrder, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, customer_name, COALESCE(notes, ''), date, items, total, status
		FROM pending_orders ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list pending orders", err)
	}
	defer rows.Close()
	var list []*entity.PendingOrder
	for rows.Next() {
		var o entity.PendingOrder
		var items []byte
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Notes, &o.Date, &items, &o.Total, &o.Status); err != nil {
			return nil, storageErr("scan pending order", err)
		}
		o.Items = decodeItems(items)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una orden por ID. Borrar un id inexistente no es error (idempotente).
func (r *PendingOrderRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx, `DELETE FROM pending_orders WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete pending order", err)
	}
	return nil
}
