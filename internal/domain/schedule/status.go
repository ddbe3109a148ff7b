package schedule

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// OperationalStatus é o estado administrativo do agendamento.
type OperationalStatus string

const (
	StatusScheduled OperationalStatus = "scheduled"
	StatusConfirmed OperationalStatus = "confirmed"
	StatusCancelled OperationalStatus = "cancelled"
	StatusPaid      OperationalStatus = "paid"
	StatusNoShow    OperationalStatus = "no-show"
)

// ClinicalStatus é o estado do atendimento em si.
type ClinicalStatus string

const (
	ClinicalPending    ClinicalStatus = "pending"
	ClinicalInProgress ClinicalStatus = "in-progress"
	ClinicalCompleted  ClinicalStatus = "completed"
	ClinicalNoShow     ClinicalStatus = "no-show"
)

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current OperationalStatus) error {
	if current != StatusScheduled {
		return httperr.ErrInvalidTransition()
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current OperationalStatus) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrInvalidTransition()
	}
	return nil
}

// CanComplete define se um atendimento pode ser concluído
func CanComplete(current OperationalStatus, clinical ClinicalStatus) error {
	if clinical == ClinicalCompleted {
		return httperr.ErrInvalidTransition()
	}
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrInvalidTransition()
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode ser marcado como falta
func CanMarkNoShow(current OperationalStatus) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrInvalidTransition()
	}
	return nil
}

func InitialStatus() OperationalStatus {
	return StatusScheduled
}

func InitialClinicalStatus() ClinicalStatus {
	return ClinicalPending
}
