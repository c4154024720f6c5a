package validation

import (
	"strings"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

func ValidateCreateClient(req request.CreateClientRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if _, err := time.Parse(DateLayout, req.BirthDate); err != nil {
		errors["birthDate"] = "birthDate must be formatted as YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
