package cache

import (
	"context"
	"time"
)

// Cache guarda respostas de listagem do catálogo já serializadas.
// Get devolve (nil, nil) em cache miss; erro só para falha de backend.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Del(ctx context.Context, keys ...string) error
}

// Noop desliga o cache (testes e ambientes sem Redis).
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (Noop) Del(ctx context.Context, keys ...string) error {
	return nil
}
