package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// SaleUseCase registra ventas y aplica los descuentos de stock.
//
// Contrato de consistencia: la venta se persiste ANTES de tocar inventario
// y cada decremento es independiente y best-effort. Una línea con producto
// desconocido, o un fallo puntual de store en un decremento, no revierte la
// venta ni bloquea las líneas restantes: el registro de la venta es la
// fuente de verdad durable, el stock se reconcilia por fuera si hace falta.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// Commit valida el payload, persiste la venta y descuenta stock línea por línea.
func (uc *SaleUseCase) Commit(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.UserID == 0 || in.PaymentMethod == "" || in.Date == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidPayload
	}
	for _, item := range in.Items {
		if item.ResolveProductID() == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidPayload
		}
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusCompleted
	}

	sale := &entity.Sale{
		ID:            id,
		UserID:        in.UserID,
		UserName:      in.UserName,
		PaymentMethod: in.PaymentMethod,
		Date:          in.Date,
		Items:         toLineItems(in.Items),
		Total:         in.Total, // el total llega calculado por el caller, no se recalcula
		Status:        status,
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	// Descuento best-effort por línea, solo después de que la venta quedó escrita.
	for _, item := range sale.Items {
		if err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Warn().Err(err).
				Str("sale_id", sale.ID).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("descuento de stock falló, la venta queda registrada")
		}
	}

	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas registradas.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sales := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		sales = append(sales, *toSaleResponse(s))
	}
	return sales, nil
}

func toLineItems(items []dto.LineItemPayload) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.LineItem{
			ProductID: it.ResolveProductID(),
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return out
}

func toLineItemResponses(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return out
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		UserName:      s.UserName,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date,
		Items:         toLineItemResponses(s.Items),
		Total:         s.Total,
		Status:        s.Status,
	}
}
