package order

import (
	"context"
	"log"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	domain "github.com/PatinhasPetShop01/petshop-api/internal/domain/order"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	CustomerName string
	Total        int
	Items        []models.OrderItem

	// Preenchido a partir da sessão quando o cliente está logado.
	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo     domain.Repository
	checkout payments.Checkout // opcional
	audit    *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	checkout payments.Checkout,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:     repo,
		checkout: checkout,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}

	// O total vem do carrinho no front, mas é recalculado aqui: cliente
	// não dita quanto paga.
	computed := 0
	for _, item := range in.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return nil, httperr.ErrBusiness("invalid_item")
		}
		computed += item.Price * item.Quantity
	}

	if computed != in.Total {
		return nil, httperr.ErrBusiness("total_mismatch")
	}

	o := &models.Order{
		CustomerName: in.CustomerName,
		UserID:       in.UserID,
		Total:        in.Total,
		Status:       string(domain.InitialStatus()),
		Items:        in.Items,
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if uc.checkout != nil {
		url, err := uc.checkout.PaymentURL(ctx, o)
		if err != nil {
			// pagamento online é conveniência; o pedido segue sem link
			log.Printf("checkout preference failed: %v", err)
		} else {
			o.PaymentURL = url
			if err := uc.repo.Update(ctx, o); err != nil {
				log.Printf("failed to store payment url: %v", err)
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]int{"total": o.Total},
	})

	return o, nil
}
