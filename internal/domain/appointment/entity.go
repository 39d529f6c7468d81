package appointment

import (
	"time"

	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Transition aplica a mudança de status pedida pelo painel admin.
func Transition(ap *models.Appointment, target Status, now time.Time) error {
	switch target {
	case StatusConfirmed:
		return Confirm(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	default:
		return httperr.ErrBusiness("invalid_status")
	}
}
