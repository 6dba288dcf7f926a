package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AvailabilityHandler is the admin calendar editor. After every write the
// client re-fetches the records instead of mutating its local grid; the store
// is the only source of truth.
type AvailabilityHandler struct {
	repo domain.Repository
	set  *ucbooking.SetAvailability
}

func NewAvailabilityHandler(
	repo domain.Repository,
	set *ucbooking.SetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo: repo,
		set:  set,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetAvailabilityRequest struct {
	Barber      string   `json:"barber" binding:"required"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	IsOff       bool     `json:"is_off"`
	ClosedHours []string `json:"closed_hours"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// List returns raw records for the grid. Unlike the public read this one
// surfaces store failures; an admin must know the calendar could not load.
func (h *AvailabilityHandler) List(c *gin.Context) {
	records, err := h.repo.ListAvailability(
		c.Request.Context(),
		c.Query("barber"),
		c.Query("date"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Failed to load the calendar.")
		return
	}

	httpresp.List(c, records)
}

// Template exposes the daily slot template so the editor offers exactly the
// slots customers are offered.
func (h *AvailabilityHandler) Template(c *gin.Context) {
	httpresp.OK(c, gin.H{"slots": domain.SlotTemplate()})
}

func (h *AvailabilityHandler) Set(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	result, err := h.set.Execute(c.Request.Context(), ucbooking.SetAvailabilityInput{
		BarberName:  req.Barber,
		Date:        req.Date,
		IsOff:       req.IsOff,
		ClosedHours: req.ClosedHours,
		AdminID:     adminID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	if result.Deleted {
		httpresp.OK(c, gin.H{"deleted": true})
		return
	}
	httpresp.OK(c, result.Record)
}
