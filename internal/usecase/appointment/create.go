package appointment

import (
	"context"
	"time"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	domain "github.com/PatinhasPetShop01/petshop-api/internal/domain/appointment"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName string
	ContactPhone string
	PetName      string

	// Nome do serviço como snapshot: o agendamento não referencia o catálogo.
	ServiceName string

	// RFC3339 ou "2006-01-02T15:04" (input datetime-local do front),
	// interpretado no fuso da loja.
	Date string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Sem checagem de conflito de horário: a loja confirma manualmente
	// cada agendamento pelo painel.
	ap := &models.Appointment{
		CustomerName: in.CustomerName,
		ContactPhone: in.ContactPhone,
		PetName:      in.PetName,
		ServiceName:  in.ServiceName,
		Date:         date,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.ParseInLocation(
		"2006-01-02T15:04",
		raw,
		timezone.Location(timezone.DefaultTimezone),
	)
}
