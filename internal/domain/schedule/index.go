package schedule

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type slotKey struct {
	Date     string
	Time     string
	DoctorID uint
}

// Index mapeia (data, hora, profissional) → agendamentos. É reconstruído a
// cada requisição a partir dos registros do repositório e vive só durante
// o cálculo; não há cache nem estado compartilhado.
type Index struct {
	byKey map[slotKey][]*models.Appointment
}

// BuildIndex recebe TODOS os registros do período, cancelados inclusive:
// um cancelado fica indexado mas não ocupa o horário.
func BuildIndex(records []models.Appointment) *Index {
	idx := &Index{
		byKey: make(map[slotKey][]*models.Appointment, len(records)),
	}
	for i := range records {
		idx.Insert(&records[i])
	}
	return idx
}

// Insert aplica um registro recém-persistido para reconsulta imediata
// sem novo fetch.
func (idx *Index) Insert(ap *models.Appointment) {
	key := slotKey{Date: ap.Date, Time: ap.Time, DoctorID: ap.DoctorID}
	idx.byKey[key] = append(idx.byKey[key], ap)
}

// Get devolve qualquer registro no horário, ocupante ou não.
func (idx *Index) Get(date, hm string, doctorID uint) (*models.Appointment, bool) {
	aps := idx.byKey[slotKey{Date: date, Time: hm, DoctorID: doctorID}]
	if len(aps) == 0 {
		return nil, false
	}
	return aps[0], true
}

// Occupant devolve o agendamento que bloqueia o horário, se existir.
func (idx *Index) Occupant(date, hm string, doctorID uint) (*models.Appointment, bool) {
	for _, ap := range idx.byKey[slotKey{Date: date, Time: hm, DoctorID: doctorID}] {
		if Occupies(ap) {
			return ap, true
		}
	}
	return nil, false
}

// Occupies: só cancelado libera o horário (soft status, nunca deletamos).
func Occupies(ap *models.Appointment) bool {
	return ap.OperationalStatus != string(StatusCancelled)
}
