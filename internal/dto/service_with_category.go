package dto

import "github.com/BruksfildServices01/salon-booking/internal/models"

type ServiceWithCategory struct {
	models.Service
	Category *models.ServiceCategory `json:"category"`
}
