package domain

import (
	"slices"
	"time"
)

const (
	RoleUser        = "ROLE_USER"
	RoleAdmin       = "ROLE_ADMIN"
	RoleVeterinaire = "ROLE_VETERINAIRE"
	RoleEmployee    = "ROLE_EMPLOYEE"
)

// allowedRoles is the registration allow-list. Anything else is rejected.
var allowedRoles = []string{RoleUser, RoleAdmin, RoleVeterinaire, RoleEmployee}

// IsAllowedRole reports whether role may be assigned at registration.
func IsAllowedRole(role string) bool {
	return slices.Contains(allowedRoles, role)
}

// User models an account in the system: staff, veterinarians and visitors.
//
// APIToken is an opaque random string assigned once at registration and
// stored verbatim; requests authenticate by exact match on it. It is never
// rotated or expired.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"column:first_name"`
	LastName  string    `json:"lastName" gorm:"column:last_name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	APIToken  string    `json:"-" gorm:"column:api_token;uniqueIndex;not null"`
	Roles     []string  `json:"roles" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// HasRole reports exact string membership; no role implies another.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}
