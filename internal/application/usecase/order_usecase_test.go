package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/application/usecase"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

func TestOrderCreate_DefaultsYGeneracionDeID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.Create(ctx, dto.CreateOrderRequest{
		CustomerName: "Cliente X",
		Date:         "2025-06-01T10:30:00",
		Items:        []dto.LineItemPayload{{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(3)}},
		Total:        decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "status por defecto pending")
}

func TestOrderCreate_PayloadInvalido(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.Create(ctx, dto.CreateOrderRequest{Date: "2025-06-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload, "customerName es requerido")

	_, err = uc.Create(ctx, dto.CreateOrderRequest{CustomerName: "Cliente X"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload, "date es requerido")
}

// Crear una orden no toca inventario: eso solo pasa al registrar la venta.
func TestOrderCreate_NoTocaInventario(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewOrderUseCase(orderRepo)
	_, err := uc.Create(ctx, dto.CreateOrderRequest{
		CustomerName: "Cliente X",
		Date:         "2025-06-01",
		Items:        []dto.LineItemPayload{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, productRepo.stockOf("p1"))
	assert.Empty(t, productRepo.decrements)
}

func TestOrderDelete_Idempotente(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	assert.NoError(t, uc.Delete(ctx, "no-existe"), "borrar orden inexistente es éxito")

	out, err := uc.Create(ctx, dto.CreateOrderRequest{ID: "o1", CustomerName: "Cliente X", Date: "2025-06-01"})
	require.NoError(t, err)
	assert.NoError(t, uc.Delete(ctx, out.ID))
	assert.NoError(t, uc.Delete(ctx, out.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
