package order

import "github.com/PatinhasPetShop01/petshop-api/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// CanTransition valida a mudança pedida pelo painel admin. Pedidos são um log
// append-only: uma vez pagos ou cancelados, não voltam atrás.
func CanTransition(current, target Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}

	switch target {
	case StatusPaid, StatusCancelled:
		return nil
	default:
		return httperr.ErrBusiness("invalid_status")
	}
}
