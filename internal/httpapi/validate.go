package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fenQuery binds GET /v1/opening.
type fenQuery struct {
	FEN string `validate:"required,max=128"`
}

// nameQuery binds GET /v1/opening/name.
type nameQuery struct {
	Name string `validate:"required,max=256"`
}

// searchQuery binds GET /v1/opening/search. Limit is nil when the
// parameter is absent.
type searchQuery struct {
	Q     string `validate:"required,max=256"`
	Limit *int   `validate:"omitempty,min=1,max=15"`
}

// validationMessage turns validator errors into one readable line.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", field))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return details.String()
}
