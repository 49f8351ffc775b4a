package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type CatalogHandler struct {
	repo catalog.Repository
	log  *logging.Logger
}

func NewCatalogHandler(repo catalog.Repository, log *logging.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Image string `json:"image" binding:"max=500"`
}

type ServiceRequest struct {
	CategoryID uint    `json:"categoryId" binding:"required"`
	Name       string  `json:"name" binding:"required,max=100"`
	Price      float64 `json:"price" binding:"gte=0"`
	Duration   int     `json:"duration" binding:"required,gt=0"`
	Image      string  `json:"image" binding:"max=500"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.repo.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, cat)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat := &models.ServiceCategory{Name: req.Name, Image: req.Image}
	if err := h.repo.CreateCategory(c.Request.Context(), cat); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, cat)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat := &models.ServiceCategory{ID: id, Name: req.Name, Image: req.Image}
	if err := h.repo.UpdateCategory(c.Request.Context(), cat); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, cat)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	noContent(c)
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) ListServicesByCategory(c *gin.Context) {
	id, ok := parseID(c, "categoryId")
	if !ok {
		return
	}
	list, err := h.repo.ListServicesByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	svc, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

// ServicesWithCategories junta cada serviço com a sua categoria (nil se apagada).
func (h *CatalogHandler) ServicesWithCategories(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := h.repo.ListServices(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	byID := make(map[uint]*models.ServiceCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	out := make([]dto.ServiceWithCategory, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.ServiceWithCategory{Service: svc, Category: byID[svc.CategoryID]})
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.categoryExists(c, req.CategoryID) {
		return
	}

	svc := &models.Service{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Duration:   req.Duration,
		Image:      req.Image,
	}
	if err := h.repo.CreateService(c.Request.Context(), svc); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.categoryExists(c, req.CategoryID) {
		return
	}

	svc := &models.Service{
		ID:         id,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Duration:   req.Duration,
		Image:      req.Image,
	}
	if err := h.repo.UpdateService(c.Request.Context(), svc); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.DeleteService(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	noContent(c)
}

func (h *CatalogHandler) categoryExists(c *gin.Context, id uint) bool {
	_, err := h.repo.GetCategory(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, h.log, httperr.ErrBusiness("category_not_found"))
		return false
	}
	if err != nil {
		respondError(c, h.log, err)
		return false
	}
	return true
}
