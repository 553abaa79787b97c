package domain

import "time"

// Animal is a zoo resident. Etat carries the latest health assessment as
// free text, written by the veterinary staff.
type Animal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nom       string    `json:"nom" gorm:"not null"`
	Race      string    `json:"race"`
	Habitat   string    `json:"habitat"`
	Etat      string    `json:"etat"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Animal) TableName() string { return "animals" }
