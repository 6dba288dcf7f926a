package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	"github.com/berberhaus/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// ServiceHandler manages the service catalog. Services are never deleted,
// only deactivated: existing appointments keep the name snapshot they were
// created with, but the price list must still resolve old ids.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Names       models.LocalizedText `json:"names" binding:"required"`
	Price       float64              `json:"price"`
	DurationMin int                  `json:"duration_min"`
	Active      *bool                `json:"active"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if len(req.Names) == 0 {
		httperr.BadRequest(c, "missing_names", "At least one localized name is required.")
		return
	}

	service := models.Service{
		ShopID:      shopID,
		Names:       req.Names,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create the service.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to load the service.")
		return
	}

	if len(req.Names) > 0 {
		service.Names = req.Names
	}
	service.Price = req.Price
	service.DurationMin = req.DurationMin
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update the service.")
		return
	}

	httpresp.OK(c, service)
}

// Deactivate replaces deletion so historical bookings keep a resolvable
// service row.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to deactivate the service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, gin.H{"deactivated": true})
}
