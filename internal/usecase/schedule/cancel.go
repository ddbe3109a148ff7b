package schedule

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela o agendamento e libera o horário para nova reserva.
// notifyPatient é só um aviso para o colaborador externo de notificação;
// não muda nada aqui dentro.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
	notifyPatient bool,
) (*models.Appointment, error) {

	if strings.TrimSpace(reason) == "" {
		return nil, httperr.ErrValidation("missing_cancellation_reason")
	}

	clinic, err := uc.repo.GetClinic(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	now := timezone.NowIn(clinic.Timezone)
	if err := domain.Cancel(ap, reason, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		DoctorID: &ap.DoctorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"reason":         reason,
			"notify_patient": notifyPatient,
		},
	})

	return ap, nil
}
