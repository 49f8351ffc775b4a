package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	clientUC "github.com/BruksfildServices01/salon-booking/internal/usecase/client"
)

type ClientHandler struct {
	list   *clientUC.ListClients
	create *clientUC.CreateClient
	update *clientUC.UpdateClient
	log    *logging.Logger
}

func NewClientHandler(
	list *clientUC.ListClients,
	create *clientUC.CreateClient,
	update *clientUC.UpdateClient,
	log *logging.Logger,
) *ClientHandler {
	return &ClientHandler{list: list, create: create, update: update, log: log}
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=100"`
	Phone *string `json:"phone" binding:"omitempty,phone"`
}

// ======================================================
// LIST CLIENTS (ADMIN)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, client)
}

// Create é público: 409 para e-mail repetido.
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), clientUC.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, clientUC.UpdateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, client)
}
