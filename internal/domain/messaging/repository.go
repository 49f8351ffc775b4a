package messaging

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	ListTemplates(ctx context.Context) ([]models.MessageTemplate, error)
	GetTemplate(ctx context.Context, id uint) (*models.MessageTemplate, error)

	// Primeiro template do tipo (ordem de id).
	GetTemplateByType(ctx context.Context, templateType string) (*models.MessageTemplate, error)

	CreateTemplate(ctx context.Context, t *models.MessageTemplate) error
	UpdateTemplate(ctx context.Context, t *models.MessageTemplate) error
}
