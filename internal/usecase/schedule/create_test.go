package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, noopHolder{}, testDispatcher())
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1,
		DoctorID:  1,
		Date:      futureDate(),
		Time:      "08:00",
		Reason:    "primeira consulta",
	})

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, "scheduled", ap.OperationalStatus)
	assert.Equal(t, "pending", ap.ClinicalStatus)

	// sem session_type explícito, herda a especialidade do profissional
	assert.Equal(t, "psychology", ap.SessionType)
}

func TestCreateAppointmentConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)
	date := futureDate()

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: date, Time: "08:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: date, Time: "08:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateAppointmentSameSlotOtherDoctor(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)
	date := futureDate()

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: date, Time: "08:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 2, Date: date, Time: "08:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: futureDate(),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_request"))
}

func TestCreateAppointmentTimeOutsideRoster(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	for _, hm := range []string{"12:00", "18:40", "08:10", "07:20"} {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			PatientID: 1, DoctorID: 1, Date: futureDate(), Time: hm,
		})
		assert.True(t, httperr.IsBusiness(err, "time_not_available"), "hm %s", hm)
	}
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: "07/09/2026", Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestCreateAppointmentInPast(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: "2020-01-06", Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentMinAdvance(t *testing.T) {
	repo := newFakeRepo()
	// 100 dias de antecedência garante rejeição mesmo para o mês que vem
	repo.clinic.MinAdvanceMinutes = 100 * 24 * 60
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: futureDate(), Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 99, Date: futureDate(), Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestCreateAppointmentInactiveDoctor(t *testing.T) {
	repo := newFakeRepo()
	repo.doctors[1].Active = false
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: futureDate(), Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 99, DoctorID: 1, Date: futureDate(), Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
}

func TestCreateAppointmentInvalidSessionType(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: futureDate(), Time: "08:00",
		SessionType: "acupuncture",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_session_type"))
}

func TestCreateAppointmentSlotHeldElsewhere(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, deniedHolder{}, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 1, DoctorID: 1, Date: futureDate(), Time: "08:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// nada persistido enquanto o slot estava reservado por outro
	assert.Empty(t, repo.appointments)
}
