package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	billingUC "github.com/BruksfildServices01/salon-booking/internal/usecase/billing"
)

type BillingHandler struct {
	summary *billingUC.GetSummary
	log     *logging.Logger
}

func NewBillingHandler(summary *billingUC.GetSummary, log *logging.Logger) *BillingHandler {
	return &BillingHandler{summary: summary, log: log}
}

func (h *BillingHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}
