package schedule

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// CheckConflict valida uma proposta (profissional, data, hora) contra o
// índice. Slots têm largura fixa, então basta comparação exata da tupla.
// excludeID evita que uma edição conflite com o próprio agendamento.
//
// É um pré-check de caminho rápido: a palavra final é do índice único
// parcial no banco (ver db.go), e a violação lá mapeia para o mesmo erro.
func CheckConflict(idx *Index, doctorID uint, date, hm string, excludeID uint) error {
	occupant, ok := idx.Occupant(date, hm, doctorID)
	if !ok {
		return nil
	}
	if excludeID != 0 && occupant.ID == excludeID {
		return nil
	}
	return httperr.ErrConflict()
}
