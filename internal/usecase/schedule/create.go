package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	redisclient "github.com/BruksfildServices01/clinic-scheduler/internal/redis"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Date string // YYYY-MM-DD
	Time string // HH:MM, precisa pertencer ao roteiro do dia

	SessionType string // vazio = especialidade do profissional
	Reason      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	holder redisclient.SlotHolder
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	holder redisclient.SlotHolder,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		holder: holder,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.PatientID == 0 || in.DoctorID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation("invalid_request")
	}

	// --------------------------------------------------
	// 2. Clínica + janela do dia
	// --------------------------------------------------
	clinic, err := uc.repo.GetClinic(ctx)
	if err != nil {
		return nil, err
	}
	window := domain.WindowFromClinic(clinic)

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	if !window.Contains(in.Time) {
		return nil, httperr.ErrValidation("time_not_available")
	}

	// --------------------------------------------------
	// 3. Antecedência mínima (no fuso da clínica)
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(clinic.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time")
	}

	now := timezone.NowIn(clinic.Timezone)
	minAdvance := time.Duration(clinic.MinAdvanceMinutes) * time.Minute
	if start.Before(now.Add(minAdvance)) {
		return nil, httperr.ErrValidation("too_soon")
	}

	// --------------------------------------------------
	// 4. Profissional / paciente / tipo de sessão
	// --------------------------------------------------
	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil || !doctor.Active {
		return nil, httperr.ErrNotFound("doctor_not_found")
	}

	if _, err := uc.repo.GetPatientByID(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrNotFound("patient_not_found")
	}

	sessionType := in.SessionType
	if sessionType == "" {
		sessionType = doctor.Specialty
	}
	st, err := uc.repo.GetSessionTypeByCode(ctx, sessionType)
	if err != nil || !st.Active {
		return nil, httperr.ErrValidation("invalid_session_type")
	}

	// --------------------------------------------------
	// 5. Reserva curta do slot + conflito + persistência
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:         in.PatientID,
		DoctorID:          in.DoctorID,
		Date:              in.Date,
		Time:              in.Time,
		SessionType:       sessionType,
		OperationalStatus: string(domain.InitialStatus()),
		ClinicalStatus:    string(domain.InitialClinicalStatus()),
		Reason:            in.Reason,
	}

	err = uc.holder.WithSlotHold(ctx, in.DoctorID, in.Date, in.Time, func(ctx context.Context) error {

		records, err := uc.repo.ListAppointmentsForDay(ctx, in.DoctorID, in.Date)
		if err != nil {
			return err
		}
		idx := domain.BuildIndex(records)

		if err := domain.CheckConflict(idx, in.DoctorID, in.Date, in.Time, 0); err != nil {
			return err
		}

		if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		// reconsulta imediata no mesmo snapshot enxerga o novo registro
		idx.Insert(ap)
		return nil
	})

	if err != nil {
		// slot sendo reservado por outra requisição = mesmo conflito
		if errors.Is(err, redisclient.ErrHoldNotAcquired) {
			return nil, httperr.ErrConflict()
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		DoctorID: &ap.DoctorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
