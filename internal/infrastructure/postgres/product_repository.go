package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO products (id, name, stock, price, category, sku, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Stock, product.Price,
		product.Category, product.SKU, product.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
// COALESCE: las filas escritas por versiones anteriores del backend traen
// NULL en category/sku/image_url.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, name, stock, price, COALESCE(category, ''), COALESCE(sku, ''), COALESCE(image_url, '')
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Stock, &p.Price, &p.Category, &p.SKU, &p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product", err)
	}
	return &p, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		SELECT id, name, stock, price, COALESCE(category, ''), COALESCE(sku, ''), COALESCE(image_url, '')
		FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.Category, &p.SKU, &p.ImageURL); err != nil {
			return nil, storageErr("scan product", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables de un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	query := `
		UPDATE products SET name = $2, stock = $3, price = $4, category = $5, sku = $6, image_url = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Stock, product.Price,
		product.Category, product.SKU, product.ImageURL,
	)
	if err != nil {
		return storageErr("update product", err)
	}
	return nil
}

// Delete elimina un producto por ID. Borrar un id inexistente no es error (idempotente).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete product", err)
	}
	return nil
}

// DecrementStock descuenta stock con piso en cero en un solo UPDATE atómico.
// El clamp ocurre dentro del statement (GREATEST), así dos ventas concurrentes
// sobre el mismo producto nunca pierden un decremento ni dejan stock negativo.
// Si el producto no existe, el UPDATE no afecta filas y no es error:
// el registro de la venta es la fuente de verdad, el stock es best-effort.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, quantity int) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = GREATEST(0, stock - $2) WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return storageErr("decrement stock", err)
	}
	return nil
}
