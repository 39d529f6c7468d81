package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// ProductMemoryRepository guarda produtos em um map protegido por mutex.
// IDs são atribuídos monotonicamente e nunca reutilizados, mesmo após delete.
type ProductMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.Product
}

func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Product),
	}
}

func (r *ProductMemoryRepository) List(
	ctx context.Context,
	filter catalog.ProductFilter,
) ([]models.Product, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]models.Product, 0, len(r.items))
	for _, p := range r.items {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products, nil
}

func (r *ProductMemoryRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = *p
	return nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = *p
	return nil
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
