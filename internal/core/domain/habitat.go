package domain

import "time"

// Habitat describes one of the zoo's enclosures. Animaux is a free-text
// summary of the species living there, as shown on the public site.
type Habitat struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nom         string    `json:"nom" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Animaux     string    `json:"animaux"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Habitat) TableName() string { return "habitats" }
