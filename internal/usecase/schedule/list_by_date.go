package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, date)
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
