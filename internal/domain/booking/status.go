package booking

import "github.com/berberhaus/barbershop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// There is no stored "rejected" appointment state: rejecting an appointment
// removes the row. Job applications keep rejection as a status instead.

// InitialStatus is forced on every created appointment regardless of input.
func InitialStatus() Status {
	return StatusPending
}

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Job Application Status
// ===============================

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func IsValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationReviewed, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}
