package flow

import "time"

// ===============================
// Flow states
// ===============================

// The steps are strictly ordered and cannot be skipped. Going back to an
// earlier step keeps everything entered at later steps.
type State string

const (
	StateServiceSelection State = "service_selection"
	StateDateTime         State = "date_time"
	StateBarberSelection  State = "barber_selection"
	StateContactInfo      State = "contact_info"
	StateSubmitted        State = "submitted"
)

var stateOrder = map[State]int{
	StateServiceSelection: 0,
	StateDateTime:         1,
	StateBarberSelection:  2,
	StateContactInfo:      3,
	StateSubmitted:        4,
}

// Session is one customer's walk through the booking wizard. It holds raw
// selections only; price and availability are always recomputed from the
// stores, never cached here.
type Session struct {
	ID       string `json:"id"`
	State    State  `json:"state"`
	Language string `json:"language"`

	ServiceIDs []uint `json:"service_ids"`

	Date string `json:"date"`
	Time string `json:"time"`

	// BarberID nil with AnyBarber true means explicit "no preference";
	// both empty means the step has not been completed yet.
	BarberID  *uint `json:"barber_id"`
	AnyBarber bool  `json:"any_barber"`

	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CountryCode  string `json:"country_code"`

	AppointmentID uint `json:"appointment_id"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) clearBarber() {
	s.BarberID = nil
	s.AnyBarber = false
}
