package models

import "time"

// Cliente sem login; identificado pelo e-mail.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	LastVisit  *time.Time `json:"lastVisit"`
	TotalSpent float64    `gorm:"type:decimal(10,2);not null" json:"totalSpent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
