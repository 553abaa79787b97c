package domain

import "time"

// Service is a visitor-facing amenity (restaurant, guided tour, train...).
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nom         string    `json:"nom" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Service) TableName() string { return "services" }
