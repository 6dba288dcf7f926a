package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/berberhaus/barbershop-api/internal/domain/booking"
	"github.com/berberhaus/barbershop-api/internal/httperr"
	"github.com/berberhaus/barbershop-api/internal/httpresp"
	"github.com/berberhaus/barbershop-api/internal/middleware"
	"github.com/berberhaus/barbershop-api/internal/notify"
	ucbooking "github.com/berberhaus/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentHandler struct {
	repo    domain.Repository
	list    *ucbooking.ListAppointments
	approve *ucbooking.ApproveAppointment
	reject  *ucbooking.RejectAppointment
	sender  notify.Sender
}

func NewAdminAppointmentHandler(
	repo domain.Repository,
	list *ucbooking.ListAppointments,
	approve *ucbooking.ApproveAppointment,
	reject *ucbooking.RejectAppointment,
	sender notify.Sender,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		repo:    repo,
		list:    list,
		approve: approve,
		reject:  reject,
		sender:  sender,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type NotifyRequest struct {
	Template string `json:"template"`
}

// ======================================================
// LISTS
// ======================================================

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context(), domain.AppointmentFilter{
		Status: c.Query("status"),
		Phone:  c.Query("phone"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to load appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// PendingQueue backs the review inbox.
func (h *AdminAppointmentHandler) PendingQueue(c *gin.Context) {
	appointments, err := h.list.PendingQueue(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to load appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// ConfirmedRegistry backs the approved view, newest date first.
func (h *AdminAppointmentHandler) ConfirmedRegistry(c *gin.Context) {
	appointments, err := h.list.ConfirmedRegistry(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to load appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus only ever moves pending → approved. Rejection is not a status
// write, it is a delete (see Reject).
func (h *AdminAppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Status != string(domain.StatusApproved) {
		httperr.BadRequest(c, "invalid_status", "Appointments can only be approved; use delete to reject.")
		return
	}

	ap, err := h.approve.Execute(c.Request.Context(), adminID, req.ID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Reject hard-deletes. Deleting an id that is already gone still answers
// 200: the end state the admin asked for holds either way.
func (h *AdminAppointmentHandler) Reject(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.reject.Execute(c.Request.Context(), &adminID, uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Failed to delete the appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// NOTIFY
// ======================================================

// Notify composes the outbound confirmation from the template and hands it
// to the messaging collaborator; the response carries the text and the
// wa.me link so the admin can send it manually.
func (h *AdminAppointmentHandler) Notify(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Failed to load the appointment.")
		return
	}

	var req NotifyRequest
	_ = c.ShouldBindJSON(&req) // body optional, default template otherwise

	body := notify.Render(req.Template, ap)
	msg := notify.Message{
		To:   ap.Phone,
		Body: body,
		Link: notify.WhatsAppLink(ap.Phone, body),
	}

	if err := h.sender.Send(c.Request.Context(), msg); err != nil {
		httperr.Internal(c, "failed_to_notify", "Failed to hand off the notification.")
		return
	}

	httpresp.OK(c, msg)
}
