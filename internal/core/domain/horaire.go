package domain

// Horaire holds the opening hours for one day of the week. Ouverture and
// Fermeture are "HH:MM" strings; the front end renders them as-is.
type Horaire struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Jour      string `json:"jour" gorm:"not null"`
	Ouverture string `json:"ouverture"`
	Fermeture string `json:"fermeture"`
}

func (Horaire) TableName() string { return "horaires" }
