package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	domainClient "github.com/BruksfildServices01/salon-booking/internal/domain/client"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

var _ domainClient.Repository = (*ClientGormRepository)(nil)

func (r *ClientGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var list []models.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

func (r *ClientGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "client")
	}
	return &c, nil
}

func (r *ClientGormRepository) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&c).Error; err != nil {
		return nil, notFound(err, "client")
	}
	return &c, nil
}

func (r *ClientGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domainClient.ErrEmailTaken
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) UpdateClient(ctx context.Context, c *models.Client) error {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":        c.Name,
			"email":       c.Email,
			"phone":       c.Phone,
			"last_visit":  c.LastVisit,
			"total_spent": c.TotalSpent,
		})
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domainClient.ErrEmailTaken
		}
		return fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("client")
	}
	return nil
}
