package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

// OrderUseCase ciclo de vida de órdenes pendientes: crear, listar, borrar.
// Las órdenes no tocan inventario ni ventas; cumplir una orden es una llamada
// aparte del caller al registro de ventas con las líneas de la orden.
type OrderUseCase struct {
	repo repository.PendingOrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.PendingOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden pendiente. Si no llega id, se genera un UUID.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || in.Date == "" {
		return nil, domain.ErrInvalidPayload
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	order := &entity.PendingOrder{
		ID:           id,
		CustomerName: in.CustomerName,
		Notes:        in.Notes,
		Date:         in.Date,
		Items:        toLineItems(in.Items),
		Total:        in.Total,
		Status:       status,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todas las órdenes pendientes.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, *toOrderResponse(o))
	}
	return orders, nil
}

// Delete elimina una orden por ID. Idempotente: borrar un id inexistente no falla.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toOrderResponse(o *entity.PendingOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
		Date:         o.Date,
		Items:        toLineItemResponses(o.Items),
		Total:        o.Total,
		Status:       o.Status,
	}
}
