package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrValidation("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:                ap.ID,
			Date:              ap.Date,
			Time:              ap.Time,
			SessionType:       ap.SessionType,
			OperationalStatus: ap.OperationalStatus,
			ClinicalStatus:    ap.ClinicalStatus,
			PatientName:       ap.Patient.Name,
			DoctorName:        ap.Doctor.Name,
		})
	}

	return out, nil
}
