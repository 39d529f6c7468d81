package memory

import (
	"context"
	"testing"

	"github.com/PatinhasPetShop01/petshop-api/internal/domain/account"
	"github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

func TestProductRepositoryIDsNeverReused(t *testing.T) {
	repo := NewProductMemoryRepository()
	ctx := context.Background()

	a := &models.Product{Name: "A", Category: "X"}
	b := &models.Product{Name: "B", Category: "X"}
	_ = repo.Create(ctx, a)
	_ = repo.Create(ctx, b)

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	c := &models.Product{Name: "C", Category: "X"}
	_ = repo.Create(ctx, c)

	if c.ID == a.ID {
		t.Errorf("id %d foi reutilizado após delete", a.ID)
	}
	if c.ID <= b.ID {
		t.Errorf("ids devem ser monotônicos: %d depois de %d", c.ID, b.ID)
	}
}

func TestProductRepositoryFilter(t *testing.T) {
	repo := NewProductMemoryRepository()
	ctx := context.Background()

	_ = repo.Create(ctx, &models.Product{Name: "Ração", Category: "Ração"})
	_ = repo.Create(ctx, &models.Product{Name: "Mordedor", Category: "Brinquedos"})

	listed, err := repo.List(ctx, catalog.ProductFilter{Category: "Ração"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Ração" {
		t.Fatalf("filtro = %+v", listed)
	}

	// sensível a maiúsculas
	listed, _ = repo.List(ctx, catalog.ProductFilter{Category: "ração"})
	if len(listed) != 0 {
		t.Fatalf("filtro deveria ser exato: %+v", listed)
	}
}

func TestProductRepositoryGetMissing(t *testing.T) {
	repo := NewProductMemoryRepository()

	p, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("produto fantasma: %+v", p)
	}
}

func TestUserRepositoryUniqueUsername(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	first := &models.User{Username: "ana@example.com", Name: "Ana"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &models.User{Username: "ana@example.com", Name: "Impostora"}
	if err := repo.Create(ctx, dup); err != account.ErrDuplicateUsername {
		t.Fatalf("err = %v, esperado ErrDuplicateUsername", err)
	}

	stored, _ := repo.GetByUsername(ctx, "ana@example.com")
	if stored == nil || stored.Name != "Ana" {
		t.Fatalf("registro original alterado: %+v", stored)
	}
}

func TestAuditRepositoryListsNewestFirst(t *testing.T) {
	repo := NewAuditMemoryRepository()
	ctx := context.Background()

	for _, action := range []string{"a", "b", "c"} {
		_ = repo.Record(ctx, &models.AuditLog{Action: action})
	}

	logs, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 2 || logs[0].Action != "c" || logs[1].Action != "b" {
		t.Fatalf("logs = %+v", logs)
	}
}
