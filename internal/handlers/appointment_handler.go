package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	appointmentUC "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list        *appointmentUC.ListAppointments
	update      *appointmentUC.UpdateAppointment
	delete      *appointmentUC.DeleteAppointment
	paymentLink *payments.CreatePaymentLink
	loc         *time.Location
	log         *logging.Logger
}

func NewAppointmentHandler(
	list *appointmentUC.ListAppointments,
	update *appointmentUC.UpdateAppointment,
	del *appointmentUC.DeleteAppointment,
	paymentLink *payments.CreatePaymentLink,
	loc *time.Location,
	log *logging.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:        list,
		update:      update,
		delete:      del,
		paymentLink: paymentLink,
		loc:         loc,
		log:         log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Atualização parcial: só os campos enviados mudam.
type UpdateAppointmentRequest struct {
	ServiceID *uint   `json:"serviceId"`
	Date      *string `json:"date"`
	Notes     *string `json:"notes" binding:"omitempty,max=500"`
	Status    *string `json:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.list.All(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByStatus(c *gin.Context) {
	list, err := h.list.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	day, err := parseDay(c.Param("date"), h.loc)
	if err != nil {
		writeBadRequest(c, "date", "must be YYYY-MM-DD")
		return
	}

	list, err := h.list.ByDate(c.Request.Context(), day)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) WithDetails(c *gin.Context) {
	list, err := h.list.WithDetails(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ap, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	in := appointmentUC.UpdateAppointmentInput{
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
		Status:    req.Status,
	}
	if req.Date != nil {
		date, err := parseTimestamp(*req.Date, h.loc)
		if err != nil {
			writeBadRequest(c, "date", "must be an ISO date-time")
			return
		}
		in.Date = &date
	}

	ap, err := h.update.Execute(c.Request.Context(), id, in, middleware.ActorID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.delete.Execute(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	noContent(c)
}

// ======================================================
// PAYMENT LINK
// ======================================================

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	link, err := h.paymentLink.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, link)
}
