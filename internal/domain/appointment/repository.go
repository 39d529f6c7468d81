package appointment

import (
	"context"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Appointment, error)

	Get(ctx context.Context, id uint) (*models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error

	Update(ctx context.Context, ap *models.Appointment) error
}
