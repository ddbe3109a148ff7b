package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	redisclient "github.com/BruksfildServices01/clinic-scheduler/internal/redis"
)

// ======================================================
// FAKE REPOSITORY (EM MEMÓRIA)
// ======================================================

type fakeRepo struct {
	clinic       *models.Clinic
	doctors      map[uint]*models.Doctor
	patients     map[uint]*models.Patient
	sessionTypes map[string]*models.SessionType

	appointments []*models.Appointment
	nextID       uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clinic: &models.Clinic{
			Name:        "Clínica Teste",
			Timezone:    "America/Sao_Paulo",
			OpenTime:    "08:00",
			CloseTime:   "18:40",
			SlotMinutes: 40,
			LunchStart:  "12:00",
			LunchEnd:    "12:40",
		},
		doctors: map[uint]*models.Doctor{
			1: {ID: 1, Name: "Dra. Ana", Specialty: "psychology", Active: true},
			2: {ID: 2, Name: "Dr. Bruno", Specialty: "speech_therapy", Active: true},
		},
		patients: map[uint]*models.Patient{
			1: {ID: 1, Name: "Carlos", Phone: "11999990000"},
		},
		sessionTypes: map[string]*models.SessionType{
			"psychology":     {ID: 1, Code: "psychology", Label: "Psicologia", Active: true},
			"speech_therapy": {ID: 2, Code: "speech_therapy", Label: "Fonoaudiologia", Active: true},
		},
		nextID: 1,
	}
}

func (r *fakeRepo) GetClinic(ctx context.Context) (*models.Clinic, error) {
	return r.clinic, nil
}

func (r *fakeRepo) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListActiveDoctors(ctx context.Context, specialty string) ([]models.Doctor, error) {
	var out []models.Doctor
	for id := uint(1); id <= uint(len(r.doctors)); id++ {
		d, ok := r.doctors[id]
		if !ok || !d.Active {
			continue
		}
		if specialty != "" && d.Specialty != specialty {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeRepo) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetSessionTypeByCode(ctx context.Context, code string) (*models.SessionType, error) {
	if st, ok := r.sessionTypes[code]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListAppointmentsForDay(ctx context.Context, doctorID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date != date {
			continue
		}
		if doctorID != 0 && ap.DoctorID != doctorID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDates(ctx context.Context, doctorID uint, dates []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, date := range dates {
		day, _ := r.ListAppointmentsForDay(ctx, doctorID, date)
		out = append(out, day...)
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	// mesma regra do índice único parcial do banco
	if err := r.AssertSlotFree(ctx, ap.DoctorID, ap.Date, ap.Time, 0); err != nil {
		return err
	}

	ap.ID = r.nextID
	r.nextID++

	stored := *ap
	r.appointments = append(r.appointments, &stored)
	return nil
}

func (r *fakeRepo) AssertSlotFree(ctx context.Context, doctorID uint, date, hm string, excludeID uint) error {
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID || ap.Date != date || ap.Time != hm {
			continue
		}
		if ap.OperationalStatus == "cancelled" {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		return httperr.ErrConflict()
	}
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			found := *ap
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i, stored := range r.appointments {
		if stored.ID == ap.ID {
			updated := *ap
			r.appointments[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.ListAppointmentsForDay(ctx, 0, date)
}

func (r *fakeRepo) ListAppointmentsForMonth(ctx context.Context, year, month int) ([]models.Appointment, error) {
	prefix := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	var out []models.Appointment
	for _, ap := range r.appointments {
		if len(ap.Date) >= 7 && ap.Date[:7] == prefix {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// ======================================================
// FAKE SLOT HOLDER
// ======================================================

// noopHolder sempre concede a reserva.
type noopHolder struct{}

func (noopHolder) WithSlotHold(ctx context.Context, doctorID uint, date, hm string, fn func(context.Context) error) error {
	return fn(ctx)
}

// deniedHolder simula outra requisição segurando o mesmo slot.
type deniedHolder struct{}

func (deniedHolder) WithSlotHold(ctx context.Context, doctorID uint, date, hm string, fn func(context.Context) error) error {
	return redisclient.ErrHoldNotAcquired
}

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// futureDate devolve um dia útil suficientemente no futuro para passar
// pela antecedência mínima em qualquer fuso.
func futureDate() string {
	d := time.Now().AddDate(0, 1, 0)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
