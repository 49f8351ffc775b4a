package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/admin"
	domainAppointment "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
)

// AdminHandler serve a tela de agendamentos por aba do painel.
type AdminHandler struct {
	manager *admin.Manager
	log     *logging.Logger
}

func NewAdminHandler(manager *admin.Manager, log *logging.Logger) *AdminHandler {
	return &AdminHandler{manager: manager, log: log}
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Tab: GET /api/admin/appointments?status=pending
func (h *AdminHandler) Tab(c *gin.Context) {
	list, err := h.manager.List(c.Request.Context(), c.DefaultQuery("status", "pending"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

// Transition devolve o agendamento atualizado e a aba de destino recarregada.
func (h *AdminHandler) Transition(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.manager.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": ap,
		"tab":         h.manager.Cached(domainAppointment.Status(ap.Status)),
	})
}
