package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestGenerate(t *testing.T) {
	slots := Generate("08:00", "10:00", 40)

	require.Equal(t, []string{"08:00", "08:40", "09:20"}, slots)
}

func TestGenerateLastSlotMustFitBeforeClose(t *testing.T) {
	// 09:20 + 40min = 10:00 cabe; 10:00 + 40min não caberia em 10:30
	slots := Generate("08:00", "10:30", 40)

	require.Equal(t, []string{"08:00", "08:40", "09:20"}, slots)
}

func TestGenerateInvalidInput(t *testing.T) {
	assert.Nil(t, Generate("8h00", "10:00", 40))
	assert.Nil(t, Generate("08:00", "banana", 40))
	assert.Nil(t, Generate("08:00", "10:00", 0))
	assert.Nil(t, Generate("08:00", "10:00", -40))
}

func TestDefaultWindowSlots(t *testing.T) {
	slots := DefaultWindow().Slots()

	require.Len(t, slots, 15)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "18:00", slots[len(slots)-1])

	// 12:00 cai no almoço e 18:40 não inicia sessão
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "18:40")
}

func TestSlotsAreDeterministic(t *testing.T) {
	w := DefaultWindow()

	first := w.Slots()
	second := w.Slots()

	require.Equal(t, first, second)
}

func TestSlotsWithoutLunch(t *testing.T) {
	w := DayWindow{Open: "08:00", Close: "12:00", StepMinutes: 60}

	require.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, w.Slots())
}

func TestContains(t *testing.T) {
	w := DefaultWindow()

	assert.True(t, w.Contains("08:00"))
	assert.True(t, w.Contains("18:00"))

	assert.False(t, w.Contains("12:00")) // almoço
	assert.False(t, w.Contains("18:40")) // fechamento
	assert.False(t, w.Contains("08:10")) // fora da grade
	assert.False(t, w.Contains("07:20"))
}

func TestWindowFromClinic(t *testing.T) {
	clinic := &models.Clinic{
		OpenTime:    "09:00",
		CloseTime:   "17:00",
		SlotMinutes: 30,
		LunchStart:  "12:00",
		LunchEnd:    "13:00",
	}

	w := WindowFromClinic(clinic)

	assert.Equal(t, "09:00", w.Open)
	assert.Equal(t, "17:00", w.Close)
	assert.Equal(t, 30, w.StepMinutes)
}

func TestWindowFromClinicFallsBackToDefault(t *testing.T) {
	w := WindowFromClinic(&models.Clinic{})

	require.Equal(t, DefaultWindow(), w)
}
