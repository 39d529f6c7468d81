package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// AuditLister lê a trilha de auditoria, mais recente primeiro.
type AuditLister interface {
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type AuditLogsHandler struct {
	logs AuditLister
}

func NewAuditLogsHandler(logs AuditLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := h.logs.List(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
