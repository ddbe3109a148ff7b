package httperr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ===============================
// Business Errors
// ===============================

// Kinds da taxonomia de erros de negócio. Todo erro cruza a fronteira do
// serviço como valor, nunca como panic.
const (
	KindValidation        = "validation"
	KindConflict          = "conflict"
	KindInvalidTransition = "invalid_transition"
	KindNotFound          = "not_found"
	KindTimeout           = "timeout"
)

type BusinessError struct {
	Kind string
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

// ErrConflict: horário já ocupado. Sempre o mesmo erro, seja pego no
// pré-check local ou na violação do índice único do banco.
func ErrConflict() error {
	return BusinessError{Kind: KindConflict, Code: "time_conflict"}
}

func ErrInvalidTransition() error {
	return BusinessError{Kind: KindInvalidTransition, Code: "invalid_state"}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrTimeout() error {
	return BusinessError{Kind: KindTimeout, Code: "timeout"}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// IsExclusionConflict detecta a violação do índice único parcial de
// (doctor_id, date, time) vinda do postgres.
func IsExclusionConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
