package client

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var ErrEmailTaken = httperr.ErrBusiness("email_taken")

type Repository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*models.Client, error)

	// CreateClient devolve ErrEmailTaken quando o e-mail já existe.
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error
}
