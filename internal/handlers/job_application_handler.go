package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/audit"
	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	"github.com/berberhaus/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// JobApplicationHandler is the admin side of the careers form. Rejected
// applications stay in the table with a rejected status; the hiring trail is
// never deleted.
type JobApplicationHandler struct {
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func NewJobApplicationHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *JobApplicationHandler {
	return &JobApplicationHandler{
		db:         db,
		dispatcher: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *JobApplicationHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if !domain.IsValidApplicationStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Unknown application status.")
			return
		}
		query = query.Where("status = ?", status)
	}

	var applications []models.JobApplication
	if err := query.Find(&applications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_applications", "Failed to load applications.")
		return
	}

	httpresp.List(c, applications)
}

func (h *JobApplicationHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid application id.")
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if !domain.IsValidApplicationStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Unknown application status.")
		return
	}

	var application models.JobApplication
	if err := h.db.WithContext(c.Request.Context()).First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "application_not_found", "Application not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_application", "Failed to load the application.")
		return
	}

	application.Status = req.Status
	if err := h.db.WithContext(c.Request.Context()).Save(&application).Error; err != nil {
		httperr.Internal(c, "failed_to_update_application", "Failed to update the application.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &adminID,
		Action:   audit.ActionApplicationReviewed,
		Entity:   "job_application",
		EntityID: &application.ID,
		Metadata: gin.H{"status": application.Status},
	})

	httpresp.OK(c, application)
}
