package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ClinicHandler struct {
	db *gorm.DB
}

func NewClinicHandler(db *gorm.DB) *ClinicHandler {
	return &ClinicHandler{db: db}
}

type UpdateClinicRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	OpenTime          *string `json:"open_time"`
	CloseTime         *string `json:"close_time"`
	SlotMinutes       *int    `json:"slot_minutes"`
	LunchStart        *string `json:"lunch_start"`
	LunchEnd          *string `json:"lunch_end"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *ClinicHandler) Get(c *gin.Context) {
	var clinic models.Clinic
	if err := h.db.First(&clinic).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "clinic_not_found", "Clínica não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_clinic", "Erro ao buscar dados da clínica.")
		return
	}

	c.JSON(http.StatusOK, clinic)
}

func (h *ClinicHandler) Update(c *gin.Context) {
	var clinic models.Clinic
	if err := h.db.First(&clinic).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "clinic_not_found", "Clínica não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_clinic", "Erro ao buscar dados da clínica.")
		return
	}

	var req UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		clinic.Name = *req.Name
	}
	if req.Phone != nil {
		clinic.Phone = *req.Phone
	}
	if req.Address != nil {
		clinic.Address = *req.Address
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido (use nomes IANA, ex: America/Sao_Paulo).")
			return
		}
		clinic.Timezone = *req.Timezone
	}

	if req.OpenTime != nil {
		if !isHourMinute(*req.OpenTime) {
			httperr.BadRequest(c, "invalid_time", "Horário de abertura inválido (use HH:MM).")
			return
		}
		clinic.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		if !isHourMinute(*req.CloseTime) {
			httperr.BadRequest(c, "invalid_time", "Horário de fechamento inválido (use HH:MM).")
			return
		}
		clinic.CloseTime = *req.CloseTime
	}
	if req.LunchStart != nil {
		if !isHourMinute(*req.LunchStart) {
			httperr.BadRequest(c, "invalid_time", "Início do almoço inválido (use HH:MM).")
			return
		}
		clinic.LunchStart = *req.LunchStart
	}
	if req.LunchEnd != nil {
		if !isHourMinute(*req.LunchEnd) {
			httperr.BadRequest(c, "invalid_time", "Fim do almoço inválido (use HH:MM).")
			return
		}
		clinic.LunchEnd = *req.LunchEnd
	}

	if req.SlotMinutes != nil {
		if *req.SlotMinutes <= 0 {
			httperr.BadRequest(c, "invalid_slot_minutes", "Duração do slot deve ser positiva (em minutos).")
			return
		}
		clinic.SlotMinutes = *req.SlotMinutes
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		clinic.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&clinic).Error; err != nil {
		httperr.Internal(c, "failed_to_update_clinic", "Erro ao salvar as configurações da clínica.")
		return
	}

	c.JSON(http.StatusOK, clinic)
}

func isHourMinute(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil && len(v) == 5
}
