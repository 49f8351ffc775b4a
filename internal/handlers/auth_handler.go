package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
)

type AuthHandler struct {
	login *auth.Login
	users user.Repository
	log   *logging.Logger
}

func NewAuthHandler(login *auth.Login, users user.Repository, log *logging.Logger) *AuthHandler {
	return &AuthHandler{login: login, users: users, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password")
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

// Me devolve o admin dono do token.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication_required", "Authentication required")
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
