package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-gadget-api/internal/application/dto"
	"github.com/jhoicas/pos-gadget-api/internal/domain"
	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
	"github.com/jhoicas/pos-gadget-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del inventario.
// El stock solo baja por ventas (DecrementStock) o por edición explícita.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Si no llega id, se genera un UUID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidPayload
	}
	if in.Stock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidPayload
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	product := &entity.Product{
		ID:       id,
		Name:     in.Name,
		Stock:    in.Stock,
		Price:    in.Price,
		Category: in.Category,
		SKU:      in.SKU,
		ImageURL: in.ImageURL,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial: solo los campos presentes en el PATCH.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidPayload
		}
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidPayload
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Idempotente: borrar un id inexistente no falla.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Stock:    p.Stock,
		Price:    p.Price,
		Category: p.Category,
		SKU:      p.SKU,
		ImageURL: p.ImageURL,
	}
}
