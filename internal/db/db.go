package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Clinic{},
		&models.Doctor{},
		&models.Patient{},
		&models.SessionType{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Regra dura de consistência: no máximo um agendamento não cancelado
	// por (profissional, data, hora). Cancelado não ocupa, então fica fora
	// do índice. É esta a checagem com palavra final sobre corrida entre
	// dois clientes no mesmo horário.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
        ON appointments (doctor_id, date, time)
        WHERE operational_status <> 'cancelled'
    `)

	seed(db)

	return db
}

// seed garante o registro único de configurações da clínica e o catálogo
// inicial de tipos de sessão.
func seed(db *gorm.DB) {
	var clinic models.Clinic
	if err := db.First(&clinic).Error; err != nil {
		db.Create(&models.Clinic{
			Name:        "Clínica",
			Timezone:    "America/Sao_Paulo",
			OpenTime:    "08:00",
			CloseTime:   "18:40",
			SlotMinutes: 40,
			LunchStart:  "12:00",
			LunchEnd:    "12:40",
		})
	}

	sessionTypes := []models.SessionType{
		{Code: "speech_therapy", Label: "Fonoaudiologia", Active: true},
		{Code: "psychology", Label: "Psicologia", Active: true},
		{Code: "occupational_therapy", Label: "Terapia Ocupacional", Active: true},
		{Code: "physiotherapy", Label: "Fisioterapia", Active: true},
	}
	for _, st := range sessionTypes {
		db.Where(models.SessionType{Code: st.Code}).FirstOrCreate(&st)
	}
}
