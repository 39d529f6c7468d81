package memory

import (
	"context"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type AuditMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	logs   []models.AuditLog
}

func NewAuditMemoryRepository() *AuditMemoryRepository {
	return &AuditMemoryRepository{nextID: 1}
}

func (r *AuditMemoryRepository) Record(ctx context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *AuditMemoryRepository) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > 200 {
		limit = 100
	}

	out := make([]models.AuditLog, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}
