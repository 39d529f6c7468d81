package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type OrderMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.Order
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Order),
	}
}

func (r *OrderMemoryRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, 0, len(r.items))
	for _, o := range r.items {
		orders = append(orders, o)
	}

	// mais recentes primeiro, como no painel admin
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (r *OrderMemoryRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderMemoryRepository) Create(ctx context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.items[o.ID] = *o
	return nil
}

func (r *OrderMemoryRepository) Update(ctx context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[o.ID] = *o
	return nil
}
