package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/PatinhasPetShop01/petshop-api/internal/config"
	"github.com/PatinhasPetShop01/petshop-api/internal/domain/account"
	"github.com/PatinhasPetShop01/petshop-api/internal/httperr"
	"github.com/PatinhasPetShop01/petshop-api/internal/httpresp"
	"github.com/PatinhasPetShop01/petshop-api/internal/middleware"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/session"
	"github.com/PatinhasPetShop01/petshop-api/internal/validators"
)

type AuthHandler struct {
	users    account.Repository
	sessions session.Store
	config   *config.Config
}

func NewAuthHandler(
	users account.Repository,
	sessions session.Store,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	if h.config.EmailDNSCheck && !validators.IsEmailDomainValid(username) {
		httperr.BadRequest(c, "invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	// Role nunca vem do payload: todo cadastro nasce como "user".
	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Role:         middleware.RoleUser,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if err == account.ErrDuplicateUsername {
			httperr.Conflict(c, "username_already_exists", "E-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar o usuário.")
		return
	}

	// Cadastro autentica na hora, sem etapa de verificação.
	if err := h.startSession(c, user.ID); err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro ao iniciar a sessão.")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro ao iniciar a sessão.")
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", h.config.CookieDomain, h.config.CookieSecure, true)

	httpresp.OK(c, gin.H{"message": "Sessão encerrada."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "not_authenticated", "Não autenticado.")
		return
	}

	httpresp.OK(c, user)
}

// --------- Session cookie ---------

func (h *AuthHandler) startSession(c *gin.Context, userID uint) error {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(h.config.SessionTTL.Seconds()),
		"/",
		h.config.CookieDomain,
		h.config.CookieSecure,
		true, // HttpOnly
	)
	return nil
}
