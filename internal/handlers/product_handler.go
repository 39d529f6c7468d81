package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	"github.com/PatinhasPetShop01/petshop-api/internal/cache"
	"github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/images"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/storage"
)

const (
	productsCacheKey = "products:all"
	catalogCacheTTL  = 5 * time.Minute
)

type ProductHandler struct {
	products catalog.ProductRepository
	cache    cache.Cache
	audit    *audit.Dispatcher
	uploader storage.Uploader // nil desativa upload de imagem
}

func NewProductHandler(
	products catalog.ProductRepository,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
	uploader storage.Uploader,
) *ProductHandler {
	return &ProductHandler{
		products: products,
		cache:    c,
		audit:    dispatcher,
		uploader: uploader,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int   `json:"price" binding:"required,gte=0"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	// Filtro de categoria é comparação exata, sensível a maiúsculas,
	// exatamente como o cliente enviou.
	category := c.Query("category")

	// Só a listagem completa passa pelo cache; listagens filtradas vão
	// direto no banco.
	if category == "" {
		if cached, err := h.cache.Get(ctx, productsCacheKey); err == nil && cached != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	products, err := h.products.List(ctx, catalog.ProductFilter{Category: category})
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	if category == "" {
		if payload, err := json.Marshal(products); err == nil {
			_ = h.cache.Set(ctx, productsCacheKey, payload, catalogCacheTTL)
		}
	}

	httpresp.OK(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", "Erro ao buscar o produto.")
		return
	}
	if product == nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	if err := h.products.Create(c.Request.Context(), &product); err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar o produto.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "product_created", product.ID)

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", "Erro ao buscar o produto.")
		return
	}
	if product == nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := h.products.Update(c.Request.Context(), product); err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar o produto.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "product_updated", product.ID)

	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao remover o produto.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "product_deleted", id)

	c.Status(http.StatusNoContent)
}

// UploadImage normaliza a imagem enviada (webp, máx. 800px) e grava no
// bucket, atualizando a URL do produto.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled",
			"Upload de imagens não está configurado.")
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", "Erro ao buscar o produto.")
		return
	}
	if product == nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler a imagem.")
		return
	}
	defer file.Close()

	normalized, err := images.Normalize(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida: use JPEG ou PNG.")
		return
	}

	key := fmt.Sprintf("products/%d/%s.webp", product.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, normalized, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar a imagem.")
		return
	}

	product.ImageURL = url
	if err := h.products.Update(c.Request.Context(), product); err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar o produto.")
		return
	}

	h.invalidate(c)
	h.dispatch(c, "product_image_uploaded", product.ID)

	httpresp.OK(c, product)
}

// --------- Helpers ---------

func (h *ProductHandler) invalidate(c *gin.Context) {
	_ = h.cache.Del(c.Request.Context(), productsCacheKey)
}

func (h *ProductHandler) dispatch(c *gin.Context, action string, productID uint) {
	var adminID *uint
	if id, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := id.(uint); ok {
			adminID = &uid
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   adminID,
		Action:   action,
		Entity:   "product",
		EntityID: &productID,
	})
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
