package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	dayUC   *ucSchedule.GetAvailability
	weekUC  *ucSchedule.GetWeekAvailability
	timeout time.Duration
}

func NewAvailabilityHandler(
	dayUC *ucSchedule.GetAvailability,
	weekUC *ucSchedule.GetWeekAvailability,
	timeout time.Duration,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		dayUC:   dayUC,
		weekUC:  weekUC,
		timeout: timeout,
	}
}

// ======================================================
// DAY
// ======================================================

// GET /api/availability?doctor_id=&specialty=&date=
// doctor_id vazio = uma grade por profissional ativo.
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	doctorID, ok := queryDoctorID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	views, err := h.dayUC.Execute(ctx, ucSchedule.GetAvailabilityInput{
		DoctorID:  doctorID,
		Specialty: c.Query("specialty"),
		Date:      date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// WEEK
// ======================================================

// GET /api/availability/week?doctor_id=&specialty=&start=&end=
// Só dias úteis entram na grade; end vazio = start + 4 dias.
func (h *AvailabilityHandler) Week(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		httperr.BadRequest(c, "missing_date", "Data inicial obrigatória.")
		return
	}

	end := c.Query("end")
	if end == "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		end = startDate.AddDate(0, 0, 4).Format("2006-01-02")
	}

	doctorID, ok := queryDoctorID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	views, err := h.weekUC.Execute(ctx, ucSchedule.GetWeekAvailabilityInput{
		DoctorID:  doctorID,
		Specialty: c.Query("specialty"),
		Start:     start,
		End:       end,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, views)
}

func queryDoctorID(c *gin.Context) (uint, bool) {
	raw := c.Query("doctor_id")
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
