package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/messaging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type TemplateGormRepository struct {
	db *gorm.DB
}

func NewTemplateGormRepository(db *gorm.DB) *TemplateGormRepository {
	return &TemplateGormRepository{db: db}
}

var _ messaging.Repository = (*TemplateGormRepository)(nil)

func (r *TemplateGormRepository) ListTemplates(ctx context.Context) ([]models.MessageTemplate, error) {
	var list []models.MessageTemplate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return list, nil
}

func (r *TemplateGormRepository) GetTemplate(ctx context.Context, id uint) (*models.MessageTemplate, error) {
	var t models.MessageTemplate
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err, "template")
	}
	return &t, nil
}

func (r *TemplateGormRepository) GetTemplateByType(ctx context.Context, templateType string) (*models.MessageTemplate, error) {
	var t models.MessageTemplate
	if err := r.db.WithContext(ctx).
		Where("type = ?", templateType).
		Order("id ASC").
		First(&t).Error; err != nil {
		return nil, notFound(err, "template")
	}
	return &t, nil
}

func (r *TemplateGormRepository) CreateTemplate(ctx context.Context, t *models.MessageTemplate) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

func (r *TemplateGormRepository) UpdateTemplate(ctx context.Context, t *models.MessageTemplate) error {
	res := r.db.WithContext(ctx).
		Model(&models.MessageTemplate{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{"type": t.Type, "subject": t.Subject, "body": t.Body})
	if res.Error != nil {
		return fmt.Errorf("update template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("template")
	}
	return nil
}
