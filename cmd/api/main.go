package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatinhasPetShop01/petshop-api/internal/cache"
	"github.com/PatinhasPetShop01/petshop-api/internal/config"
	dbpkg "github.com/PatinhasPetShop01/petshop-api/internal/db"
	"github.com/PatinhasPetShop01/petshop-api/internal/infra/repository"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/payments"
	"github.com/PatinhasPetShop01/petshop-api/internal/routes"
	"github.com/PatinhasPetShop01/petshop-api/internal/session"
	"github.com/PatinhasPetShop01/petshop-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(db, cfg); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// Redis guarda as sessões; sem ele o login não funciona.
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	deps := routes.Deps{
		Config: cfg,

		Users:        repository.NewUserGormRepository(db),
		Products:     repository.NewProductGormRepository(db),
		Services:     repository.NewServiceGormRepository(db),
		Appointments: repository.NewAppointmentGormRepository(db),
		Orders:       repository.NewOrderGormRepository(db),

		Sessions: session.NewRedisStore(redisClient, cfg.SessionTTL),
		Cache:    cache.NewRedisCache(redisClient),
	}

	auditRepo := repository.NewAuditGormRepository(db)
	deps.AuditRecorder = auditRepo
	deps.AuditLogs = auditRepo

	if cfg.S3Enabled() {
		deps.Uploader = storage.NewS3Uploader(storage.S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		log.Println("[s3] upload de imagens habilitado")
	}

	if cfg.MPAccessToken != "" {
		checkout, err := payments.NewMercadoPagoCheckout(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to init mercado pago: %v", err)
		}
		deps.Checkout = checkout
		log.Println("[mercadopago] checkout habilitado")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, deps)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
