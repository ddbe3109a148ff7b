package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil ficam como estão. Editar só o motivo nunca dispara
// verificação de conflito.
type EditAppointmentInput struct {
	Date        *string
	Time        *string
	DoctorID    *uint
	SessionType *string
	Reason      *string
}

func (in EditAppointmentInput) movesSlot(ap *models.Appointment) bool {
	if in.Date != nil && *in.Date != ap.Date {
		return true
	}
	if in.Time != nil && *in.Time != ap.Time {
		return true
	}
	if in.DoctorID != nil && *in.DoctorID != ap.DoctorID {
		return true
	}
	return false
}

// ======================================================
// USE CASE
// ======================================================

type EditAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditAppointment {
	return &EditAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EditAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	// --------------------------------------------------
	// Novo horário proposto (mesmo valor quando não muda)
	// --------------------------------------------------
	date := ap.Date
	if in.Date != nil {
		date = *in.Date
	}
	hm := ap.Time
	if in.Time != nil {
		hm = *in.Time
	}
	doctorID := ap.DoctorID
	if in.DoctorID != nil {
		doctorID = *in.DoctorID
	}

	if in.movesSlot(ap) {
		clinic, err := uc.repo.GetClinic(ctx)
		if err != nil {
			return nil, err
		}
		window := domain.WindowFromClinic(clinic)

		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, httperr.ErrValidation("invalid_date")
		}
		if !window.Contains(hm) {
			return nil, httperr.ErrValidation("time_not_available")
		}

		if in.DoctorID != nil {
			doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
			if err != nil || !doctor.Active {
				return nil, httperr.ErrNotFound("doctor_not_found")
			}
		}

		// Pré-check local: o próprio agendamento não conflita consigo.
		records, err := uc.repo.ListAppointmentsForDay(ctx, doctorID, date)
		if err != nil {
			return nil, err
		}
		idx := domain.BuildIndex(records)

		if err := domain.CheckConflict(idx, doctorID, date, hm, ap.ID); err != nil {
			return nil, err
		}

		// Palavra final do banco, ainda excluindo o próprio registro.
		if err := uc.repo.AssertSlotFree(ctx, doctorID, date, hm, ap.ID); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Aplicar mudanças (status permanece o mesmo)
	// --------------------------------------------------
	ap.Date = date
	ap.Time = hm
	ap.DoctorID = doctorID
	if in.SessionType != nil {
		st, err := uc.repo.GetSessionTypeByCode(ctx, *in.SessionType)
		if err != nil || !st.Active {
			return nil, httperr.ErrValidation("invalid_session_type")
		}
		ap.SessionType = *in.SessionType
	}
	if in.Reason != nil {
		ap.Reason = *in.Reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		DoctorID: &ap.DoctorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
