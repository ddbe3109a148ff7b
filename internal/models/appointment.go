package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	// Data e hora locais da clínica, sem fuso (ver índice parcial em db.go)
	Date string `gorm:"size:10;index:idx_appointments_doctor_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	SessionType string `gorm:"size:50" json:"session_type"`

	OperationalStatus string `gorm:"size:20;default:'scheduled'" json:"operational_status"`
	ClinicalStatus    string `gorm:"size:20;default:'pending'" json:"clinical_status"`

	Reason             string `gorm:"size:255" json:"reason"`
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
