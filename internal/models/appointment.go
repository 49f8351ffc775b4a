package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID  uint `gorm:"index;not null" json:"clientId"`
	ServiceID uint `gorm:"index;not null" json:"serviceId"`

	Date   time.Time `gorm:"index;not null" json:"date"`
	Status string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
