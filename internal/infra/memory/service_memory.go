package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type ServiceMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.Service
}

func NewServiceMemoryRepository() *ServiceMemoryRepository {
	return &ServiceMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Service),
	}
}

func (r *ServiceMemoryRepository) List(ctx context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	services := make([]models.Service, 0, len(r.items))
	for _, s := range r.items {
		services = append(services, s)
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services, nil
}

func (r *ServiceMemoryRepository) Get(ctx context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *ServiceMemoryRepository) Create(ctx context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.items[s.ID] = *s
	return nil
}

func (r *ServiceMemoryRepository) Update(ctx context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = *s
	return nil
}
