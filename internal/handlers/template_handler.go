package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type TemplateHandler struct {
	repo messaging.Repository
	log  *logging.Logger
}

func NewTemplateHandler(repo messaging.Repository, log *logging.Logger) *TemplateHandler {
	return &TemplateHandler{repo: repo, log: log}
}

type TemplateRequest struct {
	Type    string `json:"type" binding:"required,max=50"`
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
}

func (h *TemplateHandler) List(c *gin.Context) {
	list, err := h.repo.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.repo.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, t)
}

func (h *TemplateHandler) GetByType(c *gin.Context) {
	t, err := h.repo.GetTemplateByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, t)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	t := &models.MessageTemplate{Type: req.Type, Subject: req.Subject, Body: req.Body}
	if err := h.repo.CreateTemplate(c.Request.Context(), t); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, t)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	t := &models.MessageTemplate{ID: id, Type: req.Type, Subject: req.Subject, Body: req.Body}
	if err := h.repo.UpdateTemplate(c.Request.Context(), t); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, t)
}
