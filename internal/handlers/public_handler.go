package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/models"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
	"github.com/berberhaus/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db     *gorm.DB
	repo   domain.Repository
	avail  *ucbooking.GetAvailability
	create *ucbooking.CreateAppointment
	list   *ucbooking.ListAppointments
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	avail *ucbooking.GetAvailability,
	create *ucbooking.CreateAppointment,
	list *ucbooking.ListAppointments,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		repo:   repo,
		avail:  avail,
		create: create,
		list:   list,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicServiceDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type PublicBarberDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
	Available bool   `json:"available"`
}

type PublicCreateAppointmentRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	CountryCode string   `json:"country_code"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string   `json:"time" binding:"required"` // HH:MM
	Services    []string `json:"services" binding:"required"`
	Total       float64  `json:"total"`
	Barber      string   `json:"barber"`
	BarberID    *uint    `json:"barber_id"`

	// Ignored on purpose; every new appointment starts out pending.
	Status string `json:"status"`
}

type JobApplicationRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ======================================================
// SERVICES / BARBERS
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, err := h.repo.GetShop(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "shop_unavailable", "Something went wrong, please try again.")
		return
	}

	lang := strings.TrimSpace(c.Query("lang"))
	if lang == "" {
		lang = shop.DefaultLanguage
	}

	services, err := h.repo.ListServices(c.Request.Context(), true)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Something went wrong, please try again.")
		return
	}

	out := make([]PublicServiceDTO, 0, len(services))
	for i := range services {
		out = append(out, PublicServiceDTO{
			ID:          services[i].ID,
			Name:        services[i].DisplayName(lang, shop.DefaultLanguage),
			Price:       services[i].Price,
			DurationMin: services[i].DurationMin,
		})
	}

	httpresp.List(c, out)
}

// ListBarbers marks each barber unavailable when the optional ?date= has an
// is_off record for them, so the picker can grey them out.
func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Something went wrong, please try again.")
		return
	}

	off := map[string]bool{}
	if date := c.Query("date"); date != "" {
		day, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{Date: date})
		if err == nil {
			for _, name := range day.OffBarbers {
				off[name] = true
			}
		}
	}

	out := make([]PublicBarberDTO, 0, len(barbers))
	for i := range barbers {
		out = append(out, PublicBarberDTO{
			ID:        barbers[i].ID,
			Name:      barbers[i].Name,
			Specialty: barbers[i].Specialty,
			ImageURL:  barbers[i].ImageURL,
			Available: !off[barbers[i].Name],
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

// GetAvailability returns raw records filtered by barber and/or date. An
// unreachable store answers with an empty list, not an error: the booking
// surface treats "no restrictions" as the safe default.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	records, err := h.repo.ListAvailability(
		c.Request.Context(),
		c.Query("barber"),
		c.Query("date"),
	)
	if err != nil {
		log.Printf("availability read failed: %v", err)
		records = []models.AvailabilityRecord{}
	}
	if records == nil {
		records = []models.AvailabilityRecord{}
	}

	httpresp.List(c, records)
}

// GetSlots returns the computed bookable slots for a date (plus which barbers
// are off), which is what the date picker actually renders.
func (h *PublicHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:       date,
		BarberName: c.Query("barber"),
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, day)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *PublicHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context(), domain.AppointmentFilter{
		Phone: c.Query("phone"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Something went wrong, please try again.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucbooking.CreateAppointmentInput{
		CustomerName: req.Name,
		Email:        validators.NormalizeEmail(req.Email),
		Phone:        req.Phone,
		CountryCode:  req.CountryCode,
		Date:         req.Date,
		Time:         req.Time,
		Services:     req.Services,
		Total:        req.Total,
		BarberID:     req.BarberID,
		BarberName:   req.Barber,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// JOB APPLICATIONS
// ======================================================

func (h *PublicHandler) CreateJobApplication(c *gin.Context) {
	var req JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	application := models.JobApplication{
		Name:    req.Name,
		Email:   validators.NormalizeEmail(req.Email),
		Phone:   req.Phone,
		Message: req.Message,
		Status:  "pending",
	}

	if err := h.db.Create(&application).Error; err != nil {
		httperr.Internal(c, "failed_to_create_application", "Something went wrong, please try again.")
		return
	}

	c.JSON(http.StatusCreated, application)
}
