package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func newScheduled() *models.Appointment {
	return &models.Appointment{
		ID:                1,
		DoctorID:          1,
		Date:              "2026-09-07",
		Time:              "08:00",
		OperationalStatus: string(StatusScheduled),
		ClinicalStatus:    string(ClinicalPending),
	}
}

func TestConfirm(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Confirm(ap, now))

	assert.Equal(t, string(StatusConfirmed), ap.OperationalStatus)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)

	// confirmar de novo é transição inválida
	err := Confirm(ap, now)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}

func TestCancel(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Cancel(ap, "paciente pediu", now))

	assert.Equal(t, string(StatusCancelled), ap.OperationalStatus)
	assert.Equal(t, "paciente pediu", ap.CancellationReason)
	require.NotNil(t, ap.CancelledAt)
}

func TestCancelConfirmedAppointment(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Confirm(ap, now))
	require.NoError(t, Cancel(ap, "imprevisto", now))

	assert.Equal(t, string(StatusCancelled), ap.OperationalStatus)
}

func TestCancelCancelledAppointment(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Cancel(ap, "primeira vez", now))

	err := Cancel(ap, "segunda vez", now)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, "primeira vez", ap.CancellationReason)
}

func TestCompleteTouchesOnlyClinicalStatus(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Complete(ap, now))

	// concluir atendimento não mexe no status operacional
	assert.Equal(t, string(StatusScheduled), ap.OperationalStatus)
	assert.Equal(t, string(ClinicalCompleted), ap.ClinicalStatus)
	require.NotNil(t, ap.CompletedAt)
}

func TestCompleteCancelledAppointment(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Cancel(ap, "desistiu", now))

	err := Complete(ap, now)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, string(ClinicalPending), ap.ClinicalStatus)
}

func TestCompleteTwice(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, Complete(ap, now))

	err := Complete(ap, now)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}

func TestMarkNoShow(t *testing.T) {
	ap := newScheduled()
	now := time.Now()

	require.NoError(t, MarkNoShow(ap, now))

	assert.Equal(t, string(StatusNoShow), ap.OperationalStatus)
	assert.Equal(t, string(ClinicalNoShow), ap.ClinicalStatus)

	err := MarkNoShow(ap, now)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}
