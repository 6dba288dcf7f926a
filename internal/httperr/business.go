package httperr

import "errors"

// BusinessError carries a machine-readable rule-violation code across the
// usecase boundary without binding the domain to HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from any BusinessError in the chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
