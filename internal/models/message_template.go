package models

type MessageTemplate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Type    string `gorm:"size:50;index;not null" json:"type"`
	Subject string `gorm:"size:200;not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
}
