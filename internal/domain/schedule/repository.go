package schedule

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository é o colaborador de persistência do núcleo de agenda.
// O núcleo só guarda referências opacas a pacientes/profissionais;
// quem resolve os registros é o repositório.
type Repository interface {
	// -------- Clinic --------
	GetClinic(ctx context.Context) (*models.Clinic, error)

	// -------- Doctor / Patient / SessionType --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	ListActiveDoctors(
		ctx context.Context,
		specialty string,
	) ([]models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetSessionTypeByCode(
		ctx context.Context,
		code string,
	) (*models.SessionType, error)

	// -------- Appointment (availability / index) --------
	// Devolvem TODOS os status, cancelados inclusive: o índice é quem
	// decide o que ocupa horário. doctorID 0 = todos os profissionais.
	ListAppointmentsForDay(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForDates(
		ctx context.Context,
		doctorID uint,
		dates []string,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertSlotFree(
		ctx context.Context,
		doctorID uint,
		date string,
		hm string,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing projections --------
	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		year int,
		month int,
	) ([]models.Appointment, error)
}
