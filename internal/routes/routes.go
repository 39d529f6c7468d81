package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PatinhasPetShop01/petshop-api/internal/audit"
	"github.com/PatinhasPetShop01/petshop-api/internal/cache"
	"github.com/PatinhasPetShop01/petshop-api/internal/config"
	domainAccount "github.com/PatinhasPetShop01/petshop-api/internal/domain/account"
	domainAppointment "github.com/PatinhasPetShop01/petshop-api/internal/domain/appointment"
	domainCatalog "github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	domainOrder "github.com/PatinhasPetShop01/petshop-api/internal/domain/order"
	"github.com/PatinhasPetShop01/petshop-api/internal/handlers"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/payments"
	"github.com/PatinhasPetShop01/petshop-api/internal/session"
	"github.com/PatinhasPetShop01/petshop-api/internal/storage"
	ucAppointment "github.com/PatinhasPetShop01/petshop-api/internal/usecase/appointment"
	ucOrder "github.com/PatinhasPetShop01/petshop-api/internal/usecase/order"
)

// Deps reúne tudo que as rotas precisam. Produção injeta gorm + Redis;
// os testes injetam os backends de memória.
type Deps struct {
	Config *config.Config

	Users        domainAccount.Repository
	Products     domainCatalog.ProductRepository
	Services     domainCatalog.ServiceRepository
	Appointments domainAppointment.Repository
	Orders       domainOrder.Repository

	Sessions session.Store
	Cache    cache.Cache

	AuditRecorder audit.Recorder
	AuditLogs     handlers.AuditLister

	Uploader storage.Uploader  // opcional
	Checkout payments.Checkout // opcional
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(d.AuditRecorder)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Appointments,
		auditDispatcher,
	)

	appointmentStatusUC := ucAppointment.NewUpdateStatus(
		d.Appointments,
		auditDispatcher,
	)

	createOrderUC := ucOrder.NewCreateOrder(
		d.Orders,
		d.Checkout,
		auditDispatcher,
	)

	orderStatusUC := ucOrder.NewUpdateStatus(
		d.Orders,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Users, d.Sessions, d.Config)
	productHandler := handlers.NewProductHandler(d.Products, d.Cache, auditDispatcher, d.Uploader)
	serviceHandler := handlers.NewServiceHandler(d.Services, d.Cache, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		appointmentStatusUC,
		d.Appointments,
	)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		orderStatusUC,
		d.Orders,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(d.Sessions, d.Users))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/user", authHandler.Me)

		// ------------------------------
		// CATÁLOGO PÚBLICO
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// AGENDAMENTOS E PEDIDOS (cliente)
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/orders", orderHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)
			admin.POST("/products/:id/image", productHandler.UploadImage)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)

			admin.GET("/appointments", appointmentHandler.List)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			admin.GET("/orders", orderHandler.List)
			admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
