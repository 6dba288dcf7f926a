package booking

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/berberhaus/barbershop-api/internal/httperr"
)

// Full international format: "+" then 10-15 digits.
var phonePattern = regexp.MustCompile(`^\+[0-9]{10,15}$`)

// NormalizePhone combines a locally entered number with a country calling
// code ("+49") into full international form: whitespace stripped, a single
// leading "0" dropped, then validated against phonePattern. A number already
// starting with "+" is taken as-is (minus whitespace).
//
// The same rule runs client-side for fast feedback and here authoritatively.
func NormalizePhone(raw, countryCode string) (string, error) {
	number := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if number == "" {
		return "", httperr.ErrBusiness("missing_phone")
	}

	if !strings.HasPrefix(number, "+") {
		number = strings.TrimPrefix(number, "0")
		number = strings.TrimSpace(countryCode) + number
	}

	if !phonePattern.MatchString(number) {
		return "", httperr.ErrBusiness("invalid_phone")
	}
	return number, nil
}
