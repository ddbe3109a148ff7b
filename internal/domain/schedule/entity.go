package schedule

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(OperationalStatus(ap.OperationalStatus)); err != nil {
		return err
	}

	ap.OperationalStatus = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

// Cancel nunca remove o registro: cancelamento é transição de status.
func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(OperationalStatus(ap.OperationalStatus)); err != nil {
		return err
	}

	ap.OperationalStatus = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	return nil
}

// Complete conclui o atendimento clínico; o status operacional segue
// intocado ("paid" chega por fluxo externo de pagamento).
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(
		OperationalStatus(ap.OperationalStatus),
		ClinicalStatus(ap.ClinicalStatus),
	); err != nil {
		return err
	}

	ap.ClinicalStatus = string(ClinicalCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(OperationalStatus(ap.OperationalStatus)); err != nil {
		return err
	}

	ap.OperationalStatus = string(StatusNoShow)
	ap.ClinicalStatus = string(ClinicalNoShow)
	return nil
}
