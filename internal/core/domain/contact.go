package domain

import "time"

// Contact is a request submitted through the public contact form.
// Demande is the request category (information, réclamation, ...).
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nom       string    `json:"nom" gorm:"not null"`
	Prenom    string    `json:"prenom"`
	Email     string    `json:"email" gorm:"not null"`
	Demande   string    `json:"demande"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Contact) TableName() string { return "contacts" }
