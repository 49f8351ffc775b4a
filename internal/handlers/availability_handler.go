package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	availabilityUC "github.com/BruksfildServices01/salon-booking/internal/usecase/availability"
)

type AvailabilityHandler struct {
	set *availabilityUC.SetAvailability
	loc *time.Location
	log *logging.Logger
}

func NewAvailabilityHandler(set *availabilityUC.SetAvailability, loc *time.Location, log *logging.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{set: set, loc: loc, log: log}
}

type SetAvailabilityRequest struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable *bool  `json:"isAvailable" binding:"required"`
}

// Set grava o dia: 201 quando cria, 200 quando sobrescreve.
func (h *AvailabilityHandler) Set(c *gin.Context) {
	var req SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := parseTimestamp(req.Date, h.loc)
	if err != nil {
		writeBadRequest(c, "date", "must be YYYY-MM-DD or an ISO date-time")
		return
	}

	av, created, err := h.set.Execute(c.Request.Context(), date, *req.IsAvailable, middleware.ActorID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, av)
}
