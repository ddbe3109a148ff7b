package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestCheckConflictFreeSlot(t *testing.T) {
	idx := BuildIndex(nil)

	err := CheckConflict(idx, 1, "2026-09-07", "08:00", 0)
	assert.NoError(t, err)
}

func TestCheckConflictOccupiedSlot(t *testing.T) {
	idx := BuildIndex([]models.Appointment{
		apFixture(1, 1, "2026-09-07", "08:00", "scheduled"),
	})

	err := CheckConflict(idx, 1, "2026-09-07", "08:00", 0)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestCheckConflictCancelledFreesSlot(t *testing.T) {
	idx := BuildIndex([]models.Appointment{
		apFixture(1, 1, "2026-09-07", "08:00", "cancelled"),
	})

	err := CheckConflict(idx, 1, "2026-09-07", "08:00", 0)
	assert.NoError(t, err)
}

func TestCheckConflictExcludesSelf(t *testing.T) {
	idx := BuildIndex([]models.Appointment{
		apFixture(5, 1, "2026-09-07", "08:00", "scheduled"),
	})

	// edição do próprio agendamento não conflita consigo
	assert.NoError(t, CheckConflict(idx, 1, "2026-09-07", "08:00", 5))

	// mas conflita para qualquer outro
	assert.Error(t, CheckConflict(idx, 1, "2026-09-07", "08:00", 9))
}

func TestCheckConflictOtherDoctorSameSlot(t *testing.T) {
	idx := BuildIndex([]models.Appointment{
		apFixture(1, 1, "2026-09-07", "08:00", "scheduled"),
	})

	// profissionais diferentes não disputam o mesmo horário
	assert.NoError(t, CheckConflict(idx, 2, "2026-09-07", "08:00", 0))
}
