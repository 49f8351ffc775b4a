package models

type ServiceCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Image string `gorm:"size:500" json:"image"`
}

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CategoryID uint `gorm:"index;not null" json:"categoryId"`

	Name     string  `gorm:"size:100;not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration int     `gorm:"not null" json:"duration"` // minutos
	Image    string  `gorm:"size:500" json:"image"`
}
