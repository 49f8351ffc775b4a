package user

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}
