package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domainClient "github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type CreateClientInput struct {
	Name  string
	Email string
	Phone string
}

// Campos nil não são alterados.
type UpdateClientInput struct {
	Name  *string
	Email *string
	Phone *string
}

// ======================================================
// CREATE
// ======================================================

type CreateClient struct {
	repo  domainClient.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(repo domainClient.Repository, audit *audit.Dispatcher) *CreateClient {
	return &CreateClient{repo: repo, audit: audit}
}

// Execute devolve domainClient.ErrEmailTaken para e-mail repetido.
func (uc *CreateClient) Execute(ctx context.Context, in CreateClientInput) (*models.Client, error) {
	c := &models.Client{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   "client",
		EntityID: &c.ID,
	})
	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClient struct {
	repo domainClient.Repository
}

func NewUpdateClient(repo domainClient.Repository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

func (uc *UpdateClient) Execute(ctx context.Context, id uint, in UpdateClientInput) (*models.Client, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ======================================================
// LIST / SEARCH
// ======================================================

type ListClients struct {
	repo domainClient.Repository
}

func NewListClients(repo domainClient.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute filtra por nome, e-mail ou telefone quando query não é vazia.
func (uc *ListClients) Execute(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients, nil
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (uc *ListClients) Get(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}
