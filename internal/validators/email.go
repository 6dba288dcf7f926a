package validators

import (
	"net"
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims; empty stays empty (email is optional
// on public forms).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailSyntaxValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsEmailDomainValid checks that the domain behind the address resolves at
// all (MX first, then any A/AAAA record). Network errors count as invalid;
// callers that cannot afford a DNS round trip should stick to the syntax
// check.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
