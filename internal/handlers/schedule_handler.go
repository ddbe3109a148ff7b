package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	redisclient "github.com/BruksfildServices01/clinic-scheduler/internal/redis"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createUC   *ucSchedule.CreateAppointment
	editUC     *ucSchedule.EditAppointment
	cancelUC   *ucSchedule.CancelAppointment
	confirmUC  *ucSchedule.ConfirmAppointment
	completeUC *ucSchedule.CompleteAppointment
	noShowUC   *ucSchedule.MarkNoShow

	listByDateUC  *ucSchedule.ListAppointmentsByDate
	listByMonthUC *ucSchedule.ListAppointmentsByMonth

	repo    domain.Repository
	idem    *redisclient.IdempotencyStore
	timeout time.Duration
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateAppointment,
	editUC *ucSchedule.EditAppointment,
	cancelUC *ucSchedule.CancelAppointment,
	confirmUC *ucSchedule.ConfirmAppointment,
	completeUC *ucSchedule.CompleteAppointment,
	noShowUC *ucSchedule.MarkNoShow,
	listByDateUC *ucSchedule.ListAppointmentsByDate,
	listByMonthUC *ucSchedule.ListAppointmentsByMonth,
	repo domain.Repository,
	idem *redisclient.IdempotencyStore,
	timeout time.Duration,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:      createUC,
		editUC:        editUC,
		cancelUC:      cancelUC,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		noShowUC:      noShowUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		repo:          repo,
		idem:          idem,
		timeout:       timeout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   uint   `json:"patient_id" binding:"required"`
	DoctorID    uint   `json:"doctor_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	SessionType string `json:"session_type"`
	Reason      string `json:"reason"`
}

type EditAppointmentRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	DoctorID    *uint   `json:"doctor_id"`
	SessionType *string `json:"session_type"`
	Reason      *string `json:"reason"`
}

type CancelAppointmentRequest struct {
	Reason        string `json:"reason"`
	NotifyPatient bool   `json:"notify_patient"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	// repetição com a mesma chave devolve o agendamento já criado
	idemKey := c.GetHeader("X-Idempotency-Key")
	if idemKey != "" {
		if _, err := uuid.Parse(idemKey); err != nil {
			httperr.BadRequest(c, "invalid_idempotency_key", "Chave de idempotência inválida.")
			return
		}

		if id, ok, err := h.idem.Lookup(ctx, idemKey); err == nil && ok {
			if ap, err := h.repo.GetAppointmentByID(ctx, id); err == nil {
				httpresp.OK(c, ap)
				return
			}
		}
	}

	ap, err := h.createUC.Execute(ctx, ucSchedule.CreateAppointmentInput{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		Time:        req.Time,
		SessionType: req.SessionType,
		Reason:      req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if idemKey != "" {
		_ = h.idem.Remember(ctx, idemKey, ap.ID)
	}

	httpresp.Created(c, ap)
}

// ======================================================
// EDIT
// ======================================================

func (h *ScheduleHandler) Edit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req EditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	ap, err := h.editUC.Execute(ctx, id, ucSchedule.EditAppointmentInput{
		Date:        req.Date,
		Time:        req.Time,
		DoctorID:    req.DoctorID,
		SessionType: req.SessionType,
		Reason:      req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *ScheduleHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	ap, err := h.cancelUC.Execute(ctx, id, req.Reason, req.NotifyPatient)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ScheduleHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	ap, err := h.confirmUC.Execute(ctx, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	ap, err := h.completeUC.Execute(ctx, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ScheduleHandler) NoShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	ap, err := h.noShowUC.Execute(ctx, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *ScheduleHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	out, err := h.listByDateUC.Execute(ctx, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *ScheduleHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	out, err := h.listByMonthUC.Execute(ctx, year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
