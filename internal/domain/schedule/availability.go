package schedule

import "time"

type AvailabilityInput struct {
	DoctorID  uint
	Specialty string
	Date      time.Time
}

// AvailabilityView é uma projeção derivada, nunca persistida.
type AvailabilityView struct {
	Date      string   `json:"date"`
	DoctorID  uint     `json:"doctor_id"`
	FreeSlots []string `json:"free_slots"`
	BusySlots []string `json:"busy_slots"`
}

// ResolveAvailability cruza o roteiro do dia com o índice: livre é o que
// não tem ocupante. Saída sempre em ordem crescente de horário e
// determinística para um mesmo snapshot de agendamentos.
func ResolveAvailability(w DayWindow, idx *Index, doctorID uint, date string) AvailabilityView {
	view := AvailabilityView{
		Date:      date,
		DoctorID:  doctorID,
		FreeSlots: []string{},
		BusySlots: []string{},
	}

	for _, hm := range w.Slots() {
		if _, ok := idx.Occupant(date, hm, doctorID); ok {
			view.BusySlots = append(view.BusySlots, hm)
		} else {
			view.FreeSlots = append(view.FreeSlots, hm)
		}
	}

	return view
}

// BusinessDays lista os dias úteis (seg–sex) entre start e end, inclusive.
func BusinessDays(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d.Format("2006-01-02"))
	}
	return days
}
