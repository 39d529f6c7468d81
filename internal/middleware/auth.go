package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatinhasPetShop01/petshop-api/internal/domain/account"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
	"github.com/PatinhasPetShop01/petshop-api/internal/session"
)

const (
	ContextUser     = "currentUser"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"

	SessionCookie = "petshop_session"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SessionMiddleware resolve o principal a partir do cookie de sessão.
// Requisição sem sessão válida segue anônima; quem exige autenticação
// é o gate de cada rota.
func SessionMiddleware(sessions session.Store, users account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// RequireAdmin barra a requisição antes de qualquer efeito colateral quando
// não existe sessão com role admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextUserRole)
		if !ok || role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// CurrentUser devolve o principal autenticado, se houver.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
