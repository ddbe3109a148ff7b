package models

import "time"

// Tipos de sessão oferecidos pela clínica (fonoaudiologia, psicologia, ...)
type SessionType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code   string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Label  string `gorm:"size:100;not null" json:"label"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
