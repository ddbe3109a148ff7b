package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	DoctorID  uint   // 0 = todos os profissionais ativos
	Specialty string // filtro opcional quando DoctorID = 0
	Date      string // YYYY-MM-DD
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute é somente leitura e determinístico: duas chamadas sobre o mesmo
// snapshot de agendamentos devolvem exatamente as mesmas listas.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]domain.AvailabilityView, error) {

	if in.Date == "" {
		return nil, httperr.ErrValidation("invalid_date")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	clinic, err := uc.repo.GetClinic(ctx)
	if err != nil {
		return nil, err
	}
	window := domain.WindowFromClinic(clinic)

	doctors, err := uc.resolveDoctors(ctx, in)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListAppointmentsForDay(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, err
	}
	idx := domain.BuildIndex(records)

	views := make([]domain.AvailabilityView, 0, len(doctors))
	for _, doctor := range doctors {
		views = append(
			views,
			domain.ResolveAvailability(window, idx, doctor.ID, in.Date),
		)
	}

	return views, nil
}

func (uc *GetAvailability) resolveDoctors(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]models.Doctor, error) {

	if in.DoctorID != 0 {
		doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
		if err != nil {
			return nil, httperr.ErrNotFound("doctor_not_found")
		}
		return []models.Doctor{*doctor}, nil
	}

	return uc.repo.ListActiveDoctors(ctx, in.Specialty)
}
