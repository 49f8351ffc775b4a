package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	var list []models.ServiceCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *CatalogGormRepository) GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	var cat models.ServiceCategory
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, notFound(err, "category")
	}
	return &cat, nil
}

func (r *CatalogGormRepository) CreateCategory(ctx context.Context, cat *models.ServiceCategory) error {
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) UpdateCategory(ctx context.Context, cat *models.ServiceCategory) error {
	res := r.db.WithContext(ctx).
		Model(&models.ServiceCategory{}).
		Where("id = ?", cat.ID).
		Updates(map[string]any{"name": cat.Name, "image": cat.Image})
	if res.Error != nil {
		return fmt.Errorf("update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("category")
	}
	return nil
}

func (r *CatalogGormRepository) DeleteCategory(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ServiceCategory{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("category")
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}

func (r *CatalogGormRepository) ListServicesByCategory(ctx context.Context, categoryID uint) ([]models.Service, error) {
	var list []models.Service
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list services by category: %w", err)
	}
	return list, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err, "service")
	}
	return &svc, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, svc *models.Service) error {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, svc *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", svc.ID).
		Updates(map[string]any{
			"category_id": svc.CategoryID,
			"name":        svc.Name,
			"price":       svc.Price,
			"duration":    svc.Duration,
			"image":       svc.Image,
		})
	if res.Error != nil {
		return fmt.Errorf("update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("service")
	}
	return nil
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("service")
	}
	return nil
}
