package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const ContextPrincipal = "principal"

type TokenParser interface {
	Parse(raw string) (auth.Principal, error)
}

// RequireAdmin: sem token -> 401; token inválido/expirado ou sem perfil admin -> 403.
func RequireAdmin(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "authentication_required", "Authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, http.StatusUnauthorized, "authentication_required", "Authentication required")
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusForbidden, "invalid_token", "Invalid or expired token")
			return
		}
		if !principal.IsAdmin {
			httperr.Abort(c, http.StatusForbidden, "admin_required", "Admin access required")
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// ActorID é o id do admin para a auditoria; nil em rotas públicas.
func ActorID(c *gin.Context) *uint {
	p, ok := PrincipalFrom(c)
	if !ok {
		return nil
	}
	id := p.UserID
	return &id
}
