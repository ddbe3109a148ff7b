package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type GetWeekAvailabilityInput struct {
	DoctorID  uint
	Specialty string
	Start     string // YYYY-MM-DD
	End       string // YYYY-MM-DD, inclusivo
}

type GetWeekAvailability struct {
	repo domain.Repository
}

func NewGetWeekAvailability(repo domain.Repository) *GetWeekAvailability {
	return &GetWeekAvailability{repo: repo}
}

// Execute aplica a mesma lógica diária a cada dia útil (seg–sex) do
// intervalo. Sábado e domingo ficam de fora da grade.
func (uc *GetWeekAvailability) Execute(
	ctx context.Context,
	in GetWeekAvailabilityInput,
) ([]domain.AvailabilityView, error) {

	start, err := time.Parse("2006-01-02", in.Start)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	end, err := time.Parse("2006-01-02", in.End)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}
	if end.Before(start) || end.Sub(start) > 31*24*time.Hour {
		return nil, httperr.ErrValidation("invalid_date")
	}

	clinic, err := uc.repo.GetClinic(ctx)
	if err != nil {
		return nil, err
	}
	window := domain.WindowFromClinic(clinic)

	days := domain.BusinessDays(start, end)

	day := GetAvailability{repo: uc.repo}
	doctors, err := day.resolveDoctors(ctx, GetAvailabilityInput{
		DoctorID:  in.DoctorID,
		Specialty: in.Specialty,
	})
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListAppointmentsForDates(ctx, in.DoctorID, days)
	if err != nil {
		return nil, err
	}
	idx := domain.BuildIndex(records)

	views := make([]domain.AvailabilityView, 0, len(days)*len(doctors))
	for _, date := range days {
		for _, doctor := range doctors {
			views = append(
				views,
				domain.ResolveAvailability(window, idx, doctor.ID, date),
			)
		}
	}

	return views, nil
}
