package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate()
	bookSlot(t, repo, 1, date, "08:00")
	bookSlot(t, repo, 2, date, "08:40")

	uc := NewListAppointmentsByDate(repo)

	out, err := uc.Execute(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "08:00", out[0].Time)
	assert.Equal(t, "scheduled", out[0].OperationalStatus)
	assert.Equal(t, "pending", out[0].ClinicalStatus)
}

func TestListAppointmentsByDateInvalid(t *testing.T) {
	uc := NewListAppointmentsByDate(newFakeRepo())

	_, err := uc.Execute(context.Background(), "07-09-2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestListAppointmentsByMonthInvalid(t *testing.T) {
	uc := NewListAppointmentsByMonth(newFakeRepo())

	_, err := uc.Execute(context.Background(), 2026, 13)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), 1999, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
