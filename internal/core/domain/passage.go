package domain

import "time"

// Passage records an employee passing by an enclosure to feed or check on
// an animal. Date and Heure are kept separate to mirror the intake form.
type Passage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AnimalNom   string    `json:"animalNom" gorm:"column:animal_nom;not null"`
	Habitat     string    `json:"habitat"`
	Date        string    `json:"date"`
	Heure       string    `json:"heure"`
	Commentaire string    `json:"commentaire" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Passage) TableName() string { return "passages" }
