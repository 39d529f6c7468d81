package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/PatinhasPetShop01/petshop-api/internal/domain/order"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	ucOrder "github.com/PatinhasPetShop01/petshop-api/internal/usecase/order"
)

type OrderHandler struct {
	createUC *ucOrder.CreateOrder
	statusUC *ucOrder.UpdateStatus
	repo     domain.Repository
}

func NewOrderHandler(
	createUC *ucOrder.CreateOrder,
	statusUC *ucOrder.UpdateStatus,
	repo domain.Repository,
) *OrderHandler {
	return &OrderHandler{
		createUC: createUC,
		statusUC: statusUC,
		repo:     repo,
	}
}

// --------- Requests ---------

type OrderItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     *int   `json:"price" binding:"required,gte=0"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Total        *int               `json:"total" binding:"required,gte=0"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid cancelled"`
}

// --------- Handlers ---------

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     *item.Price,
			Quantity:  item.Quantity,
		})
	}

	// Pedido de visitante fica sem userId; logado, carimbamos o dono.
	var userID *uint
	if user, ok := middleware.CurrentUser(c); ok {
		userID = &user.ID
	}

	o, err := h.createUC.Execute(
		c.Request.Context(),
		ucOrder.CreateOrderInput{
			CustomerName: req.CustomerName,
			Total:        *req.Total,
			Items:        items,
			UserID:       userID,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_order"):
			httperr.BadRequest(c, "empty_order", "O pedido precisa de pelo menos um item.")
		case httperr.IsBusiness(err, "invalid_item"):
			httperr.BadRequest(c, "invalid_item", "Item do pedido inválido.")
		case httperr.IsBusiness(err, "total_mismatch"):
			httperr.BadRequest(c, "total_mismatch",
				"O total informado não bate com a soma dos itens.")
		default:
			httperr.Internal(c, "failed_to_create_order", "Erro ao criar o pedido.")
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar pedidos.")
		return
	}

	httpresp.OK(c, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	adminID := c.MustGet(middleware.ContextUserID).(uint)

	o, err := h.statusUC.Execute(
		c.Request.Context(),
		ucOrder.UpdateStatusInput{
			OrderID: id,
			Target:  req.Status,
			AdminID: adminID,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "order_not_found"):
			httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"), httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_order", "Erro ao atualizar o pedido.")
		}
		return
	}

	httpresp.OK(c, o)
}
