package routes

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	redisclient "github.com/BruksfildServices01/clinic-scheduler/internal/redis"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *goredis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewAppointmentGormRepository(db)

	slotHolder := redisclient.NewSlotHolder(rdb, cfg)
	idempotencyStore := redisclient.NewIdempotencyStore(rdb, cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	createAppointmentUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		slotHolder,
		auditDispatcher,
	)

	editAppointmentUC := ucSchedule.NewEditAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucSchedule.NewConfirmAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucSchedule.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	markNoShowUC := ucSchedule.NewMarkNoShow(
		scheduleRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucSchedule.NewListAppointmentsByDate(
		scheduleRepo,
	)

	listAppointmentsByMonthUC := ucSchedule.NewListAppointmentsByMonth(
		scheduleRepo,
	)

	getAvailabilityUC := ucSchedule.NewGetAvailability(scheduleRepo)
	getWeekAvailabilityUC := ucSchedule.NewGetWeekAvailability(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	scheduleHandler := handlers.NewScheduleHandler(
		createAppointmentUC,
		editAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		markNoShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		scheduleRepo,
		idempotencyStore,
		cfg.RequestTimeout,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		getWeekAvailabilityUC,
		cfg.RequestTimeout,
	)

	clinicHandler := handlers.NewClinicHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	sessionTypeHandler := handlers.NewSessionTypeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DISPONIBILIDADE
		// ------------------------------
		api.GET("/availability", availabilityHandler.Day)
		api.GET("/availability/week", availabilityHandler.Week)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", scheduleHandler.Create)
		api.GET("/appointments", scheduleHandler.ListByDate)
		api.GET("/appointments/month", scheduleHandler.ListByMonth)
		api.PATCH("/appointments/:id", scheduleHandler.Edit)
		api.PATCH("/appointments/:id/confirm", scheduleHandler.Confirm)
		api.PATCH("/appointments/:id/cancel", scheduleHandler.Cancel)
		api.PATCH("/appointments/:id/complete", scheduleHandler.Complete)
		api.PATCH("/appointments/:id/no-show", scheduleHandler.NoShow)

		// ------------------------------
		// CADASTROS
		// ------------------------------
		api.GET("/clinic", clinicHandler.Get)
		api.PATCH("/clinic", clinicHandler.Update)

		api.GET("/doctors", doctorHandler.List)
		api.POST("/doctors", doctorHandler.Create)
		api.PATCH("/doctors/:id", doctorHandler.Update)

		api.GET("/patients", patientHandler.List)
		api.POST("/patients", patientHandler.Create)
		api.PATCH("/patients/:id", patientHandler.Update)

		api.GET("/session-types", sessionTypeHandler.List)
		api.POST("/session-types", sessionTypeHandler.Create)
		api.PATCH("/session-types/:id", sessionTypeHandler.Update)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
