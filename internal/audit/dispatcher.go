package audit

import "log"

// Actions recorded by the booking and admin surfaces.
const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentApproved = "appointment_approved"
	ActionAppointmentRejected = "appointment_rejected"
	ActionAvailabilitySet     = "availability_set"
	ActionAvailabilityCleared = "availability_cleared"
	ActionApplicationReviewed = "application_reviewed"
)

type Event struct {
	ShopID   uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit rows off the request path. Events are dropped when
// the buffer is full; audit must never take the API down.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ShopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
