package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Clinic
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClinic(
	ctx context.Context,
) (*models.Clinic, error) {

	var clinic models.Clinic
	if err := r.db.WithContext(ctx).First(&clinic).Error; err != nil {
		return nil, err
	}
	return &clinic, nil
}

// --------------------------------------------------
// Doctor / Patient / SessionType
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *AppointmentGormRepository) ListActiveDoctors(
	ctx context.Context,
	specialty string,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx).Where("active = ?", true)
	if specialty != "" {
		q = q.Where("specialty = ?", specialty)
	}

	var doctors []models.Doctor
	if err := q.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *AppointmentGormRepository) GetSessionTypeByCode(
	ctx context.Context,
	code string,
) (*models.SessionType, error) {

	var st models.SessionType
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// --------------------------------------------------
// Appointment (availability / index)
// --------------------------------------------------

// Sem filtro de status: o índice em memória é quem separa ocupante de
// cancelado.
func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("date = ?", date)
	if doctorID != 0 {
		q = q.Where("doctor_id = ?", doctorID)
	}

	var aps []models.Appointment
	if err := q.Order("time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDates(
	ctx context.Context,
	doctorID uint,
	dates []string,
) ([]models.Appointment, error) {

	if len(dates) == 0 {
		return []models.Appointment{}, nil
	}

	q := r.db.WithContext(ctx).Where("date IN ?", dates)
	if doctorID != 0 {
		q = q.Where("doctor_id = ?", doctorID)
	}

	var aps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	doctorID uint,
	date string,
	hm string,
	excludeID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND time = ? AND operational_status <> ?",
			doctorID, date, hm, string(domain.StatusCancelled),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrConflict()
	}
	return nil
}

// CreateAppointment faz a checagem definitiva dentro de transação com
// FOR UPDATE; se ainda assim o índice único parcial reclamar, a violação
// vira o mesmo erro de conflito do pré-check.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND date = ? AND time = ? AND operational_status <> ?",
				ap.DoctorID, ap.Date, ap.Time, string(domain.StatusCancelled),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrConflict()
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrConflict()
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		// edição mudando (data, hora, profissional) também esbarra no
		// índice parcial
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrConflict()
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Listing projections
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	start := first.Format("2006-01-02")
	end := first.AddDate(0, 1, 0).Format("2006-01-02")

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
