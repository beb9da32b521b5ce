package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/application/usecase"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

func seedProduct(repo *fakeProductRepo, id string, stock int) {
	_ = repo.Create(context.Background(), &entity.Product{
		ID:    id,
		Name:  "producto " + id,
		Stock: stock,
		Price: decimal.NewFromFloat(2.5),
	})
}

func validSale(items ...dto.LineItemPayload) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		UserID:        1,
		UserName:      "admin",
		PaymentMethod: "cash",
		Date:          "2025-06-01T10:30:00",
		Items:         items,
		Total:         decimal.NewFromFloat(7.5),
	}
}

// Venta válida: persiste la venta y descuenta el stock de cada línea.
func TestSaleCommit_DescuentaStock(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	out, err := uc.Commit(ctx, validSale(dto.LineItemPayload{ProductID: "p1", Quantity: 3, Price: decimal.NewFromFloat(2.5)}))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "debe generarse un id si no viene en el payload")
	assert.Equal(t, entity.SaleStatusCompleted, out.Status, "status por defecto completed")
	assert.Equal(t, 7, productRepo.stockOf("p1"), "stock 10 - 3 = 7")
	require.Len(t, saleRepo.sales, 1)
	require.Len(t, saleRepo.sales[0].Items, 1)
	assert.Equal(t, "p1", saleRepo.sales[0].Items[0].ProductID)
}

// El id provisto por el caller se respeta.
func TestSaleCommit_RespetaIDDelCaller(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 5)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	in := validSale(dto.LineItemPayload{ProductID: "p1", Quantity: 1})
	in.ID = "venta-001"
	out, err := uc.Commit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "venta-001", out.ID)
}

// El descuento hace piso en cero: stock 2 - cantidad 5 = 0, nunca negativo.
func TestSaleCommit_StockNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 2)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	_, err := uc.Commit(ctx, validSale(dto.LineItemPayload{ProductID: "p1", Quantity: 5}))
	require.NoError(t, err)

	assert.Equal(t, 0, productRepo.stockOf("p1"))
}

// Dos decrementos secuenciales equivalen a uno solo por la suma (conmutatividad del piso en cero).
func TestSaleCommit_DecrementosConmutan(t *testing.T) {
	ctx := context.Background()
	run := func(quantities []int) int {
		productRepo := newFakeProductRepo()
		saleRepo := &fakeSaleRepo{}
		seedProduct(productRepo, "p1", 10)
		uc := usecase.NewSaleUseCase(saleRepo, productRepo)
		for _, q := range quantities {
			_, err := uc.Commit(ctx, validSale(dto.LineItemPayload{ProductID: "p1", Quantity: q}))
			require.NoError(t, err)
		}
		return productRepo.stockOf("p1")
	}

	assert.Equal(t, run([]int{7, 4}), run([]int{4, 7}))
	assert.Equal(t, run([]int{11}), run([]int{7, 4}))
}

// Una línea con producto desconocido se salta sin fallar el commit:
// la venta queda registrada y los productos conocidos sí se descuentan.
func TestSaleCommit_ProductoDesconocidoSeSalta(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	out, err := uc.Commit(ctx, validSale(
		dto.LineItemPayload{ProductID: "p1", Quantity: 3},
		dto.LineItemPayload{ProductID: "no-existe", Quantity: 2},
	))
	require.NoError(t, err, "producto desconocido no debe abortar la venta")

	assert.NotNil(t, out)
	assert.Len(t, saleRepo.sales, 1, "la venta debe quedar persistida")
	assert.Equal(t, 7, productRepo.stockOf("p1"))
}

// Un fallo de store en un decremento no revierte la venta ni bloquea las demás líneas.
func TestSaleCommit_FalloDeDecrementoNoRevierteVenta(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 10)
	seedProduct(productRepo, "p2", 10)
	productRepo.failDecOn["p1"] = errors.New("conexión perdida")

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	_, err := uc.Commit(ctx, validSale(
		dto.LineItemPayload{ProductID: "p1", Quantity: 3},
		dto.LineItemPayload{ProductID: "p2", Quantity: 4},
	))
	require.NoError(t, err)

	assert.Len(t, saleRepo.sales, 1, "la venta sigue registrada")
	assert.Equal(t, 10, productRepo.stockOf("p1"), "p1 no se descontó por el fallo")
	assert.Equal(t, 6, productRepo.stockOf("p2"), "p2 se descuenta aunque p1 falló")
}

// La venta se escribe ANTES de cualquier decremento: si la persistencia falla,
// no se toca el inventario.
func TestSaleCommit_FalloDePersistenciaNoTocaStock(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{failCreate: domain.ErrStorage}
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	_, err := uc.Commit(ctx, validSale(dto.LineItemPayload{ProductID: "p1", Quantity: 3}))
	require.Error(t, err)

	assert.Equal(t, 10, productRepo.stockOf("p1"), "sin venta persistida no hay decremento")
	assert.Empty(t, productRepo.decrements)
}

// La línea puede traer el producto en "id" en vez de "productId" (clientes viejos).
func TestSaleCommit_FallbackAlCampoID(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	_, err := uc.Commit(ctx, validSale(dto.LineItemPayload{ID: "p1", Quantity: 2}))
	require.NoError(t, err)

	assert.Equal(t, 8, productRepo.stockOf("p1"))
}

// Payloads inválidos se rechazan antes de tocar el store.
func TestSaleCommit_PayloadInvalido(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	uc := usecase.NewSaleUseCase(saleRepo, productRepo)

	cases := map[string]dto.CreateSaleRequest{
		"sin userId": {
			PaymentMethod: "cash", Date: "2025-06-01",
			Items: []dto.LineItemPayload{{ProductID: "p1", Quantity: 1}},
		},
		"sin paymentMethod": {
			UserID: 1, Date: "2025-06-01",
			Items: []dto.LineItemPayload{{ProductID: "p1", Quantity: 1}},
		},
		"sin date": {
			UserID: 1, PaymentMethod: "cash",
			Items: []dto.LineItemPayload{{ProductID: "p1", Quantity: 1}},
		},
		"sin items": {
			UserID: 1, PaymentMethod: "cash", Date: "2025-06-01",
		},
		"item sin producto": {
			UserID: 1, PaymentMethod: "cash", Date: "2025-06-01",
			Items: []dto.LineItemPayload{{Quantity: 1}},
		},
		"item con cantidad cero": {
			UserID: 1, PaymentMethod: "cash", Date: "2025-06-01",
			Items: []dto.LineItemPayload{{ProductID: "p1", Quantity: 0}},
		},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Commit(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
			assert.Empty(t, saleRepo.sales, "no debe persistirse nada")
			assert.Empty(t, productRepo.decrements, "no debe descontarse nada")
		})
	}
}

// El total llega calculado por el caller y se guarda tal cual, sin recomputar.
func TestSaleCommit_TotalNoSeRecalcula(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	seedProduct(productRepo, "p1", 10)

	uc := usecase.NewSaleUseCase(saleRepo, productRepo)
	in := validSale(dto.LineItemPayload{ProductID: "p1", Quantity: 3, Price: decimal.NewFromFloat(2.5)})
	in.Total = decimal.NewFromFloat(999.99) // inconsistente a propósito
	out, err := uc.Commit(ctx, in)
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.NewFromFloat(999.99)))
}
