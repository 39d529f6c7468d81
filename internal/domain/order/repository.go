package order

import (
	"context"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Order, error)

	Get(ctx context.Context, id uint) (*models.Order, error)

	Create(ctx context.Context, o *models.Order) error

	Update(ctx context.Context, o *models.Order) error
}
