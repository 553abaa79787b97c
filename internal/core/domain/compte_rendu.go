package domain

import "time"

// CompteRendu is a veterinary food report: which animal was seen, what it
// was fed and how much, plus an optional comment on its condition.
type CompteRendu struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	NomAnimal   string    `json:"nomAnimal" gorm:"column:nom_animal;not null"`
	Race        string    `json:"race"`
	Habitat     string    `json:"habitat"`
	Nourriture  string    `json:"nourriture"`
	Quantitee   string    `json:"quantitee"`
	Date        string    `json:"date"`
	Commentaire string    `json:"commentaire" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (CompteRendu) TableName() string { return "comptes_rendus" }
