package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Generate produz os horários de início (HH:MM) a partir de open,
// avançando stepMinutes, enquanto o slot ainda termina até close.
// Função pura: mesma entrada, mesma saída.
func Generate(open, close string, stepMinutes int) []string {
	start, ok := minuteOfDay(open)
	if !ok {
		return nil
	}
	end, ok := minuteOfDay(close)
	if !ok || stepMinutes <= 0 {
		return nil
	}

	var slots []string
	for cur := start; cur+stepMinutes <= end; cur += stepMinutes {
		slots = append(slots, formatHM(cur))
	}
	return slots
}

// ===============================
// Day Window
// ===============================

// DayWindow é a janela de atendimento de um dia da clínica.
type DayWindow struct {
	Open        string
	Close       string
	StepMinutes int
	LunchStart  string
	LunchEnd    string
}

// DefaultWindow: 08:00–18:40 em sessões de 40min com almoço 12:00–12:40,
// o que dá 15 horários por dia (08:00 ... 18:00, sem o 12:00).
func DefaultWindow() DayWindow {
	return DayWindow{
		Open:        "08:00",
		Close:       "18:40",
		StepMinutes: 40,
		LunchStart:  "12:00",
		LunchEnd:    "12:40",
	}
}

func WindowFromClinic(clinic *models.Clinic) DayWindow {
	w := DayWindow{
		Open:        clinic.OpenTime,
		Close:       clinic.CloseTime,
		StepMinutes: clinic.SlotMinutes,
		LunchStart:  clinic.LunchStart,
		LunchEnd:    clinic.LunchEnd,
	}
	if w.Open == "" || w.Close == "" || w.StepMinutes <= 0 {
		return DefaultWindow()
	}
	return w
}

// Slots devolve o roteiro do dia em ordem crescente, pulando o almoço.
func (w DayWindow) Slots() []string {
	base := Generate(w.Open, w.Close, w.StepMinutes)

	lunchStart, okS := minuteOfDay(w.LunchStart)
	lunchEnd, okE := minuteOfDay(w.LunchEnd)
	if !okS || !okE {
		return base
	}

	slots := make([]string, 0, len(base))
	for _, hm := range base {
		start, _ := minuteOfDay(hm)
		end := start + w.StepMinutes

		// almoço
		if start < lunchEnd && end > lunchStart {
			continue
		}
		slots = append(slots, hm)
	}
	return slots
}

// Contains diz se hm é um horário válido do roteiro do dia.
func (w DayWindow) Contains(hm string) bool {
	for _, s := range w.Slots() {
		if s == hm {
			return true
		}
	}
	return false
}

// ===============================
// Helpers
// ===============================

func minuteOfDay(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func formatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
