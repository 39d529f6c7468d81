package account

import (
	"context"
	"errors"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// ErrDuplicateUsername sinaliza violação do índice único de username,
// independente do backend (postgres ou memória).
var ErrDuplicateUsername = errors.New("username already taken")

type Repository interface {
	Get(ctx context.Context, id uint) (*models.User, error)

	GetByUsername(ctx context.Context, username string) (*models.User, error)

	Create(ctx context.Context, u *models.User) error
}
