package models

import (
	"time"

	"github.com/google/uuid"
)

// Preference is the single profile a user generates recommendations from.
// It is overwritten on every save.
type Preference struct {
	UserID         uuid.UUID `db:"user_id"`
	Country        string    `db:"country"`
	City           string    `db:"city"`
	Interests      []string  `db:"interests"`
	AvailableHours string    `db:"available_hours"`
	Language       string    `db:"language"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Location renders "{city}, {country}".
func (p *Preference) Location() string {
	return p.City + ", " + p.Country
}
