package postgres

import (
	"context"

	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus líneas como snapshot JSONB.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	items, err := encodeItems(sale.Items)
	if err != nil {
		return domain.ErrInvalidPayload
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO sales (id, user_id, user_name, payment_method, date, items, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		sale.ID, sale.UserID, sale.UserName, sale.PaymentMethod, sale.Date,
		items, sale.Total, sale.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert sale", err)
	}
	return nil
}

// List devuelve todas las ventas registradas.
// COALESCE en user_name: ventas antiguas pueden traerlo NULL.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, user_id, COALESCE(user_name, ''), payment_method, date, items, total, status
		FROM sales ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list sales", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var items []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.PaymentMethod, &s.Date, &items, &s.Total, &s.Status); err != nil {
			return nil, storageErr("scan sale", err)
		}
		s.Items = decodeItems(items)
		list = append(list, &s)
	}
	return list, rows.Err()
}
