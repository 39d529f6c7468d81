package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	"github.com/PatinhasPetShop01/petshop-api/internal/cache"
	"github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

const servicesCacheKey = "services:all"

type ServiceHandler struct {
	services catalog.ServiceRepository
	cache    cache.Cache
	audit    *audit.Dispatcher
}

func NewServiceHandler(
	services catalog.ServiceRepository,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		cache:    c,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int   `json:"price" binding:"required,gte=0"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" binding:"omitempty,gte=0"`
	Duration    *int    `json:"duration,omitempty" binding:"omitempty,min=1"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.cache.Get(ctx, servicesCacheKey); err == nil && cached != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	services, err := h.services.List(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	if payload, err := json.Marshal(services); err == nil {
		_ = h.cache.Set(ctx, servicesCacheKey, payload, catalogCacheTTL)
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		DurationMin: req.Duration,
		ImageURL:    req.ImageURL,
	}

	if err := h.services.Create(c.Request.Context(), &service); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar o serviço.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "service_created", service.ID)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	service, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar o serviço.")
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.DurationMin = *req.Duration
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}

	if err := h.services.Update(c.Request.Context(), service); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar o serviço.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "service_updated", service.ID)

	httpresp.OK(c, service)
}

// --------- Helpers ---------

func (h *ServiceHandler) invalidate(c *gin.Context) {
	_ = h.cache.Del(c.Request.Context(), servicesCacheKey)
}

func (h *ServiceHandler) dispatch(c *gin.Context, action string, serviceID uint) {
	var adminID *uint
	if id, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := id.(uint); ok {
			adminID = &uid
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   adminID,
		Action:   action,
		Entity:   "service",
		EntityID: &serviceID,
	})
}
