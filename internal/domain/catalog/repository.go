package catalog

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Categories --------
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error)
	CreateCategory(ctx context.Context, cat *models.ServiceCategory) error
	UpdateCategory(ctx context.Context, cat *models.ServiceCategory) error
	DeleteCategory(ctx context.Context, id uint) error

	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Service, error)
	ListServicesByCategory(ctx context.Context, categoryID uint) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, svc *models.Service) error
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}
