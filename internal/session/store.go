package session

import (
	"context"
	"errors"
)

// ErrNotFound cobre token desconhecido e sessão expirada; para o chamador
// as duas situações são iguais (principal ausente).
var ErrNotFound = errors.New("session not found")

// Store mantém o mapeamento token opaco -> usuário autenticado.
// A sessão nasce no login/register e morre no logout ou por expiração.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)

	Get(ctx context.Context, token string) (uint, error)

	Destroy(ctx context.Context, token string) error
}
