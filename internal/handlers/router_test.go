package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/PatinhasPetShop01/petshop-api/internal/cache"
	"github.com/PatinhasPetShop01/petshop-api/internal/config"
	"github.com/PatinhasPetShop01/petshop-api/internal/infra/memory"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/routes"
	"github.com/PatinhasPetShop01/petshop-api/internal/session"
)

// env monta a API completa com backends de memória: mesmo roteamento e
// middlewares de produção, sem Postgres nem Redis.
type env struct {
	router *gin.Engine

	users        *memory.UserMemoryRepository
	products     *memory.ProductMemoryRepository
	services     *memory.ServiceMemoryRepository
	appointments *memory.AppointmentMemoryRepository
	orders       *memory.OrderMemoryRepository
	audit        *memory.AuditMemoryRepository
	sessions     *session.MemoryStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &env{
		users:        memory.NewUserMemoryRepository(),
		products:     memory.NewProductMemoryRepository(),
		services:     memory.NewServiceMemoryRepository(),
		appointments: memory.NewAppointmentMemoryRepository(),
		orders:       memory.NewOrderMemoryRepository(),
		audit:        memory.NewAuditMemoryRepository(),
		sessions:     session.NewMemoryStore(time.Hour),
	}

	cfg := &config.Config{
		SessionTTL: time.Hour,
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config:        cfg,
		Users:         e.users,
		Products:      e.products,
		Services:      e.services,
		Appointments:  e.appointments,
		Orders:        e.orders,
		Sessions:      e.sessions,
		Cache:         cache.Noop{},
		AuditRecorder: e.audit,
		AuditLogs:     e.audit,
	})

	e.router = r
	return e
}

func (e *env) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// seedUser grava um usuário direto no repositório e devolve o cookie de
// sessão dele, sem passar pelo endpoint de login.
func (e *env) seedUser(t *testing.T, username, password, role string) (*models.User, *http.Cookie) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         "Teste",
		Role:         role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := e.sessions.Create(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	return user, &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func (e *env) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	_, cookie := e.seedUser(t, "admin@petshop.com", "admin123", middleware.RoleAdmin)
	return cookie
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}
