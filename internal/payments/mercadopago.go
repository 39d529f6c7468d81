package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// MercadoPagoCheckout cria uma preference de Checkout Pro por pedido e
// devolve o init point para o cliente concluir o pagamento.
type MercadoPagoCheckout struct {
	client preference.Client
}

func NewMercadoPagoCheckout(accessToken string) (*MercadoPagoCheckout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoCheckout{
		client: preference.NewClient(cfg),
	}, nil
}

func (m *MercadoPagoCheckout) PaymentURL(ctx context.Context, o *models.Order) (string, error) {
	items := make([]preference.ItemRequest, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, preference.ItemRequest{
			ID:         fmt.Sprintf("%d", item.ProductID),
			Title:      item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  float64(item.Price) / 100.0, // centavos -> reais
			CurrencyID: "BRL",
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: fmt.Sprintf("order-%d", o.ID),
	}

	resp, err := m.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resp.InitPoint, nil
}
