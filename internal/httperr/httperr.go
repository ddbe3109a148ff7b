package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Timeout(c *gin.Context) {
	Write(c, http.StatusGatewayTimeout, "timeout", messageFor("timeout"))
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ===============================
// Error → Response
// ===============================

// Mensagens exibidas ao usuário. Conflito e validação aparecem na hora,
// nunca são engolidos nem re-tentados automaticamente.
var messages = map[string]string{
	"invalid_request":             "Dados inválidos.",
	"invalid_date":                "Data inválida.",
	"invalid_time":                "Horário inválido.",
	"time_not_available":          "Horário fora da agenda da clínica.",
	"too_soon":                    "Horário já passou ou está muito próximo.",
	"invalid_session_type":        "Tipo de sessão inválido.",
	"missing_cancellation_reason": "Motivo do cancelamento é obrigatório.",
	"invalid_idempotency_key":     "Chave de idempotência inválida.",
	"time_conflict":               "Conflito de horário: já existe agendamento para este profissional.",
	"invalid_state":               "Transição de status inválida.",
	"appointment_not_found":       "Agendamento não encontrado.",
	"doctor_not_found":            "Profissional não encontrado.",
	"patient_not_found":           "Paciente não encontrado.",
	"session_type_not_found":      "Tipo de sessão não encontrado.",
	"timeout":                     "Tempo de resposta excedido, tente novamente.",
}

func messageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "Erro inesperado."
}

// FromError converte um erro de negócio (ou timeout de contexto) na
// resposta HTTP correspondente.
func FromError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		Timeout(c)
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindConflict:
			Conflict(c, be.Code, messageFor(be.Code))
		case KindNotFound:
			NotFound(c, be.Code, messageFor(be.Code))
		case KindTimeout:
			Timeout(c)
		default:
			// validation / invalid_transition
			BadRequest(c, be.Code, messageFor(be.Code))
		}
		return
	}

	Internal(c, "internal_error", "Erro inesperado.")
}
