package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/pos-gadget-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type decrementCall struct {
	ProductID string
	Quantity  int
}

// fakeProductRepo replica el contrato del adaptador PostgreSQL:
// DecrementStock hace piso en cero y un id desconocido es un no-op sin error
// (el UPDATE real no afecta filas).
type fakeProductRepo struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	decrements []decrementCall
	failDecOn  map[string]error // product id -> error simulado de store
	failList   error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[string]*entity.Product),
		failDecOn: make(map[string]error),
	}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	var list []*entity.Product
	for _, p := range f.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failDecOn[id]; ok {
		return err
	}
	f.decrements = append(f.decrements, decrementCall{ProductID: id, Quantity: quantity})
	if p, ok := f.products[id]; ok {
		p.Stock -= quantity
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	return nil
}

func (f *fakeProductRepo) stockOf(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		return p.Stock
	}
	return -1
}

// fakeSaleRepo registra las ventas persistidas en orden de llegada.
type fakeSaleRepo struct {
	mu         sync.Mutex
	sales      []*entity.Sale
	failCreate error
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	cp := *s
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Sale(nil), f.sales...), nil
}

// fakeOrderRepo órdenes pendientes en memoria; Delete es no-op para ids desconocidos.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.PendingOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.PendingOrder)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.PendingOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]*entity.PendingOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.PendingOrder
	for _, o := range f.orders {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	return nil
}
