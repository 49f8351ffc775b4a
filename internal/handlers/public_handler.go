package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	appointmentUC "github.com/BruksfildServices01/salon-booking/internal/usecase/appointment"
	availabilityUC "github.com/BruksfildServices01/salon-booking/internal/usecase/availability"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o fluxo de agendamento do cliente (sem login).
type PublicHandler struct {
	createBooking   *appointmentUC.CreateBooking
	timeSlots       *appointmentUC.GetTimeSlots
	getAvailability *availabilityUC.GetAvailability
	loc             *time.Location
	log             *logging.Logger
}

func NewPublicHandler(
	createBooking *appointmentUC.CreateBooking,
	timeSlots *appointmentUC.GetTimeSlots,
	getAvailability *availabilityUC.GetAvailability,
	loc *time.Location,
	log *logging.Logger,
) *PublicHandler {
	return &PublicHandler{
		createBooking:   createBooking,
		timeSlots:       timeSlots,
		getAvailability: getAvailability,
		loc:             loc,
		log:             log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookingClientRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
}

type CreateAppointmentRequest struct {
	ServiceID uint                  `json:"serviceId" binding:"required"`
	Date      string                `json:"date" binding:"required"`
	Notes     string                `json:"notes" binding:"max=500"`
	ClientID  *uint                 `json:"clientId"`
	Client    *BookingClientRequest `json:"client"`
}

////////////////////////////////////////////////////////
// APPOINTMENTS
////////////////////////////////////////////////////////

// CreateAppointment: status sempre pending, o que vier no corpo é ignorado.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	var fields []httperr.FieldError
	date, err := parseTimestamp(req.Date, h.loc)
	if err != nil {
		fields = append(fields, httperr.FieldError{Field: "date", Message: "must be an ISO date-time"})
	}
	if req.Client == nil && req.ClientID == nil {
		fields = append(fields, httperr.FieldError{Field: "client", Message: "is required"})
	}
	if len(fields) > 0 {
		httperr.Invalid(c, fields)
		return
	}

	in := appointmentUC.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      date,
		Notes:     req.Notes,
		ClientID:  req.ClientID,
	}
	if req.Client != nil {
		in.Client = &appointmentUC.ClientInput{
			Name:  req.Client.Name,
			Email: req.Client.Email,
			Phone: req.Client.Phone,
		}
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) ListAvailability(c *gin.Context) {
	list, err := h.getAvailability.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	day, err := parseTimestamp(c.Param("date"), h.loc)
	if err != nil {
		writeBadRequest(c, "date", "must be YYYY-MM-DD")
		return
	}

	av, err := h.getAvailability.Execute(c.Request.Context(), day)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, av)
}

// TimeSlots: GET /api/time-slots?date=YYYY-MM-DD
func (h *PublicHandler) TimeSlots(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		writeBadRequest(c, "date", "is required")
		return
	}
	day, err := parseDay(raw, h.loc)
	if err != nil {
		writeBadRequest(c, "date", "must be YYYY-MM-DD")
		return
	}

	slots, err := h.timeSlots.Execute(c.Request.Context(), day)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, slots)
}
