package notify

import (
	"fmt"
	"strings"

	"github.com/berberhaus/barbershop-api/internal/models"
)

// DefaultTemplate is what the confirmed-registry "notify" action sends when
// the shop has not configured its own text.
const DefaultTemplate = "Hello {{name}}, your appointment on {{date}} at {{time}} with {{barber}} is confirmed. Total: {{total}} EUR. See you soon!"

// Render fills the {{name}}/{{date}}/{{time}}/{{barber}}/{{total}}
// placeholders from an appointment. Unknown placeholders are left as-is.
func Render(template string, ap *models.Appointment) string {
	if template == "" {
		template = DefaultTemplate
	}

	return strings.NewReplacer(
		"{{name}}", ap.CustomerName,
		"{{date}}", ap.Date,
		"{{time}}", ap.Time,
		"{{barber}}", ap.BarberName,
		"{{total}}", fmt.Sprintf("%.2f", ap.Total),
	).Replace(template)
}
