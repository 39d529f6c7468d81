package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/PatinhasPetShop01/petshop-api/internal/domain/appointment"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	ucAppointment "github.com/PatinhasPetShop01/petshop-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	statusUC *ucAppointment.UpdateStatus
	repo     domain.Repository
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		statusUC: statusUC,
		repo:     repo,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	PetName      string `json:"petName" binding:"required"`
	ServiceName  string `json:"serviceName" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			CustomerName: req.CustomerName,
			ContactPhone: req.ContactPhone,
			PetName:      req.PetName,
			ServiceName:  req.ServiceName,
			Date:         req.Date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data do agendamento inválida.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar o agendamento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, appointments)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		ucAppointment.UpdateStatusInput{
			AppointmentID: id,
			Target:        req.Status,
			AdminID:       adminID,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"), httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar o agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}
