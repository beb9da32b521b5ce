package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// queryTimeout acota cada llamada al store. Con el pool agotado, Acquire
// espera hasta este deadline y la petición falla con ErrStorageUnavailable
// en vez de colgarse indefinidamente.
const queryTimeout = 5 * time.Second

// boundCtx deriva un contexto con el deadline de query. Si el contexto del
// caller ya trae un deadline más corto, se respeta el del caller.
func boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// storageErr envuelve errores del store. Un timeout esperando conexión del pool
// se reporta como ErrStorageUnavailable para que el caller no lo confunda con
// un fallo de escritura.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, domain.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// encodeItems serializa las líneas a JSON para la columna JSONB.
func encodeItems(items []entity.LineItem) ([]byte, error) {
	if items == nil {
		items = []entity.LineItem{}
	}
	return json.Marshal(items)
}

// decodeItems deserializa la columna JSONB; ante datos corruptos o vacíos
// devuelve una lista vacía, igual que hacía el backend original.
func decodeItems(raw []byte) []entity.LineItem {
	if len(raw) == 0 {
		return []entity.LineItem{}
	}
	var items []entity.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []entity.LineItem{}
	}
	return items
}
