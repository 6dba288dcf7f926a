package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berberhaus/barbershop-api/internal/flow"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

// FlowHandler exposes the booking wizard over the session store, one endpoint
// per step. The session id travels in the URL; there is no auth, a session is
// only as private as its random id, and it stores no secrets.
type FlowHandler struct {
	ctl *flow.Controller
}

func NewFlowHandler(ctl *flow.Controller) *FlowHandler {
	return &FlowHandler{ctl: ctl}
}

// ======================================================
// REQUESTS
// ======================================================

type FlowStartRequest struct {
	Language string `json:"language"`
}

type FlowServicesRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required"`
}

type FlowDateTimeRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type FlowBarberRequest struct {
	BarberID     *uint `json:"barber_id"`
	NoPreference bool  `json:"no_preference"`
}

type FlowSubmitRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone" binding:"required"`
	CountryCode string `json:"country_code"`
}

type FlowBackRequest struct {
	To flow.State `json:"to" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *FlowHandler) Start(c *gin.Context) {
	var req FlowStartRequest
	_ = c.ShouldBindJSON(&req) // body optional

	session, err := h.ctl.Start(c.Request.Context(), req.Language)
	if err != nil {
		httperr.Internal(c, "failed_to_start_flow", "Something went wrong, please try again.")
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *FlowHandler) Get(c *gin.Context) {
	session, err := h.ctl.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.flowError(c, err)
		return
	}

	total, _ := h.ctl.Quote(c.Request.Context(), session.ID)

	httpresp.OK(c, gin.H{
		"session": session,
		"total":   total,
	})
}

func (h *FlowHandler) SelectServices(c *gin.Context) {
	var req FlowServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	session, err := h.ctl.SelectServices(c.Request.Context(), c.Param("id"), req.ServiceIDs)
	if err != nil {
		h.flowError(c, err)
		return
	}

	httpresp.OK(c, session)
}

// Availability backs the date picker: picking a date re-fetches restrictions
// across all barbers before the customer commits to a time.
func (h *FlowHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := h.ctl.Availability(c.Request.Context(), date)
	if err != nil {
		h.flowError(c, err)
		return
	}

	httpresp.OK(c, day)
}

func (h *FlowHandler) SelectDateTime(c *gin.Context) {
	var req FlowDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	session, err := h.ctl.SelectDateTime(c.Request.Context(), c.Param("id"), req.Date, req.Time)
	if err != nil {
		h.flowError(c, err)
		return
	}

	httpresp.OK(c, session)
}

func (h *FlowHandler) SelectBarber(c *gin.Context) {
	var req FlowBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	session, err := h.ctl.SelectBarber(c.Request.Context(), c.Param("id"), req.BarberID, req.NoPreference)
	if err != nil {
		h.flowError(c, err)
		return
	}

	total, _ := h.ctl.Quote(c.Request.Context(), session.ID)

	httpresp.OK(c, gin.H{
		"session": session,
		"total":   total,
	})
}

func (h *FlowHandler) Submit(c *gin.Context) {
	var req FlowSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	session, appointment, err := h.ctl.Submit(c.Request.Context(), c.Param("id"), flow.ContactInput{
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CountryCode:  req.CountryCode,
	})
	if err != nil {
		h.flowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":     session,
		"appointment": appointment,
	})
}

func (h *FlowHandler) Back(c *gin.Context) {
	var req FlowBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	session, err := h.ctl.Back(c.Request.Context(), c.Param("id"), req.To)
	if err != nil {
		h.flowError(c, err)
		return
	}

	httpresp.OK(c, session)
}

func (h *FlowHandler) Reset(c *gin.Context) {
	session, err := h.ctl.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.flowError(c, err)
		return
	}

	httpresp.OK(c, session)
}

func (h *FlowHandler) flowError(c *gin.Context, err error) {
	if errors.Is(err, flow.ErrSessionNotFound) {
		httperr.NotFound(c, "session_not_found", "Booking session expired or does not exist.")
		return
	}
	mapBusinessError(c, err)
}
