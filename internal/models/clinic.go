package models

import "time"

// Configurações da clínica (registro único, criado pelo bootstrap do banco)
type Clinic struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Janela de atendimento (HH:MM) e duração fixa da sessão
	OpenTime    string `gorm:"size:5;default:'08:00'" json:"open_time"`
	CloseTime   string `gorm:"size:5;default:'18:40'" json:"close_time"`
	SlotMinutes int    `gorm:"default:40" json:"slot_minutes"`
	LunchStart  string `gorm:"size:5;default:'12:00'" json:"lunch_start"`
	LunchEnd    string `gorm:"size:5;default:'12:40'" json:"lunch_end"`

	MinAdvanceMinutes int `gorm:"default:0" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
