package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ======================================================
// ERROR MAPPING
// ======================================================

// respondError é o único ponto que traduz erros de caso de uso em HTTP.
func respondError(c *gin.Context, log *logging.Logger, err error) {
	var verr httperr.ValidationError
	var nf domain.NotFoundError
	var be httperr.BusinessError

	switch {
	case errors.As(err, &verr):
		httperr.Invalid(c, verr.Fields)

	case errors.As(err, &nf):
		httperr.NotFound(c, nf.Entity+"_not_found", capitalize(nf.Entity)+" not found")

	case errors.Is(err, client.ErrEmailTaken):
		httperr.Conflict(c, "email_taken", "A client with this email already exists")

	case errors.Is(err, payments.ErrNotConfigured):
		httperr.ServiceUnavailable(c, "payments_unavailable", "Payments are not configured")

	case errors.As(err, &be):
		httperr.BadRequest(c, be.Code, businessMessage(be.Code))

	default:
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", middleware.RequestIDFrom(c),
			"error", err,
		)
		httperr.Internal(c, "internal_error")
	}
}

func businessMessage(code string) string {
	switch code {
	case "invalid_status":
		return "Status must be one of: pending, confirmed, canceled"
	case "service_not_found":
		return "Service not found"
	case "client_not_found":
		return "Client not found"
	case "category_not_found":
		return "Category not found"
	case "day_unavailable":
		return "The salon is closed on this day"
	default:
		return strings.ReplaceAll(code, "_", " ")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ======================================================
// REQUEST HELPERS
// ======================================================

// bindJSON responde 400 com os erros por campo quando o corpo não valida.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Invalid(c, validators.Translate(err))
		return false
	}
	return true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Invalid(c, []httperr.FieldError{{Field: name, Message: "must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}

func writeBadRequest(c *gin.Context, field, message string) {
	httperr.Invalid(c, []httperr.FieldError{{Field: field, Message: message}})
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
