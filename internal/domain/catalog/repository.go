package catalog

import (
	"context"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// ProductFilter restringe a listagem do catálogo. Category é comparada de
// forma exata, sensível a maiúsculas, como veio do cliente.
type ProductFilter struct {
	Category string
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)

	Get(ctx context.Context, id uint) (*models.Product, error)

	Create(ctx context.Context, p *models.Product) error

	Update(ctx context.Context, p *models.Product) error

	Delete(ctx context.Context, id uint) error
}

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)

	Get(ctx context.Context, id uint) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error

	Update(ctx context.Context, s *models.Service) error
}
