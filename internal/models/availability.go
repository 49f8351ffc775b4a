package models

import "time"

// Availability marca um dia inteiro como aberto/fechado.
// Date é sempre meia-noite no fuso do salão.
type Availability struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"uniqueIndex;not null" json:"date"`
	IsAvailable bool      `gorm:"not null" json:"isAvailable"`
}
