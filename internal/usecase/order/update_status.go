package order

import (
	"context"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	domain "github.com/PatinhasPetShop01/petshop-api/internal/domain/order"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type UpdateStatusInput struct {
	OrderID uint
	Target  string
	AdminID uint
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Order, error) {

	o, err := uc.repo.Get(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if err := domain.CanTransition(domain.Status(o.Status), domain.Status(in.Target)); err != nil {
		return nil, err
	}

	o.Status = in.Target
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{"status": in.Target},
	})

	return o, nil
}
