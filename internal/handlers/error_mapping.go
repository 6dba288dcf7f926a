package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/berberhaus/barbershop-api/internal/httperr"
)

var businessMessages = map[string]string{
	"missing_name":          "Please enter your name.",
	"missing_phone":         "Please enter your phone number.",
	"invalid_phone":         "Please enter a valid phone number.",
	"missing_services":      "Please select at least one service.",
	"unknown_service":       "One of the selected services no longer exists.",
	"invalid_date":          "Invalid date.",
	"invalid_time":          "Invalid time.",
	"invalid_slot":          "Invalid time slot.",
	"slot_unavailable":      "That time is no longer available.",
	"slot_taken":            "That slot has just been booked.",
	"missing_barber":        "Please choose a barber or 'no preference'.",
	"barber_not_found":      "Barber not found.",
	"barber_unavailable":    "This barber is not available on the chosen date.",
	"invalid_step":          "This step is not available right now.",
	"invalid_state":         "This appointment can no longer be changed.",
	"appointment_not_found": "Appointment not found.",
	"store_unavailable":     "Something went wrong, please try again.",
}

// mapBusinessError turns a usecase error into the right HTTP response; all
// non-business errors become the generic retry message.
func mapBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong, please try again.")
		return
	}

	message := businessMessages[code]
	if message == "" {
		message = "Request failed."
	}

	switch code {
	case "appointment_not_found", "barber_not_found":
		httperr.NotFound(c, code, message)
	case "slot_taken":
		httperr.Conflict(c, code, message)
	case "store_unavailable":
		httperr.Internal(c, code, message)
	default:
		httperr.BadRequest(c, code, message)
	}
}
