package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/audit"
	"github.com/berberhaus/barbershop-api/internal/cache"
	"github.com/berberhaus/barbershop-api/internal/config"
	"github.com/berberhaus/barbershop-api/internal/flow"
	"github.com/berberhaus/barbershop-api/internal/handlers"
	infraRepo "github.com/berberhaus/barbershop-api/internal/infra/repository"
	"github.com/berberhaus/barbershop-api/internal/media"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	"github.com/berberhaus/barbershop-api/internal/notify"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var flowStore flow.Store
	if client := cache.NewRedisClient(cfg); client != nil {
		flowStore = flow.NewRedisStore(client, cfg.FlowTTL)
	} else {
		flowStore = flow.NewMemoryStore(cfg.FlowTTL)
	}

	var uploader media.Uploader
	if cfg.MediaEnabled() {
		uploader = media.NewS3Uploader(cfg)
	}

	var sender notify.Sender = notify.LogSender{}

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getAvailabilityUC := ucbooking.NewGetAvailability(repo)

	setAvailabilityUC := ucbooking.NewSetAvailability(
		repo,
		auditDispatcher,
	)

	createAppointmentUC := ucbooking.NewCreateAppointment(
		repo,
		auditDispatcher,
	)

	listAppointmentsUC := ucbooking.NewListAppointments(repo)

	approveAppointmentUC := ucbooking.NewApproveAppointment(
		repo,
		auditDispatcher,
	)

	rejectAppointmentUC := ucbooking.NewRejectAppointment(
		repo,
		auditDispatcher,
	)

	flowController := flow.NewController(
		repo,
		getAvailabilityUC,
		createAppointmentUC,
		flowStore,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, repo, cfg)
	shopHandler := handlers.NewShopHandler(db, repo)

	publicHandler := handlers.NewPublicHandler(
		db,
		repo,
		getAvailabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
	)

	flowHandler := handlers.NewFlowHandler(flowController)

	availabilityHandler := handlers.NewAvailabilityHandler(repo, setAvailabilityUC)

	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(
		repo,
		listAppointmentsUC,
		approveAppointmentUC,
		rejectAppointmentUC,
		sender,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db, uploader)
	jobApplicationHandler := handlers.NewJobApplicationHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.GET("/slots", publicHandler.GetSlots)
			publicAPI.GET("/appointments", publicHandler.ListAppointments)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/job-applications", publicHandler.CreateJobApplication)
		}

		// ------------------------------
		// BOOKING FLOW (WIZARD)
		// ------------------------------
		flowAPI := api.Group("/flow")
		{
			flowAPI.POST("/sessions", flowHandler.Start)
			flowAPI.GET("/sessions/:id", flowHandler.Get)
			flowAPI.POST("/sessions/:id/services", flowHandler.SelectServices)
			flowAPI.GET("/availability", flowHandler.Availability)
			flowAPI.POST("/sessions/:id/datetime", flowHandler.SelectDateTime)
			flowAPI.POST("/sessions/:id/barber", flowHandler.SelectBarber)
			flowAPI.POST("/sessions/:id/submit", flowHandler.Submit)
			flowAPI.POST("/sessions/:id/back", flowHandler.Back)
			flowAPI.POST("/sessions/:id/reset", flowHandler.Reset)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN API
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/shop", shopHandler.Get)
			admin.PATCH("/shop", shopHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments", adminAppointmentHandler.List)
			admin.GET("/appointments/pending", adminAppointmentHandler.PendingQueue)
			admin.GET("/appointments/confirmed", adminAppointmentHandler.ConfirmedRegistry)
			admin.PATCH("/appointments/status", adminAppointmentHandler.UpdateStatus)
			admin.DELETE("/appointments", adminAppointmentHandler.Reject)
			admin.POST("/appointments/:id/notify", adminAppointmentHandler.Notify)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			admin.GET("/availability", availabilityHandler.List)
			admin.GET("/availability/template", availabilityHandler.Template)
			admin.POST("/availability", availabilityHandler.Set)

			// ------------------------------
			// CATALOG
			// ------------------------------
			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Deactivate)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)
			admin.POST("/barbers/:id/image", barberHandler.UploadImage)

			// ------------------------------
			// HIRING / AUDIT
			// ------------------------------
			admin.GET("/job-applications", jobApplicationHandler.List)
			admin.PATCH("/job-applications/:id", jobApplicationHandler.UpdateStatus)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
