package memory

import (
	"context"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/domain/account"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type UserMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.User),
	}
}

func (r *UserMemoryRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserMemoryRepository) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username == u.Username {
			return account.ErrDuplicateUsername
		}
	}

	u.ID = r.nextID
	r.nextID++
	r.items[u.ID] = *u
	return nil
}
