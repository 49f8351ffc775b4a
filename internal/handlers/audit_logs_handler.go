package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs audit.Lister
	loc  *time.Location
	log  *logging.Logger
}

func NewAuditLogsHandler(logs audit.Lister, loc *time.Location, log *logging.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := parseDay(fromStr, h.loc); err == nil {
			f.From = &from
		}
	}

	// "to" inclui o dia inteiro
	if toStr := c.Query("to"); toStr != "" {
		if to, err := parseDay(toStr, h.loc); err == nil {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
