package domain

import "time"

// Avis is a visitor review. Reviews are submitted anonymously from the
// public site and stay hidden until an employee flips IsVisible.
type Avis struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nom       string    `json:"nom" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsVisible bool      `json:"isVisible" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Avis) TableName() string { return "avis" }
