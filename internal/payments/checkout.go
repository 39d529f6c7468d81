package payments

import (
	"context"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// Checkout gera um link de pagamento para o pedido. Implementação nula
// (nil) desliga o pagamento online sem tocar no fluxo de criação.
type Checkout interface {
	PaymentURL(ctx context.Context, o *models.Order) (string, error)
}
