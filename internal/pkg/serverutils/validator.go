package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries field-level failures out of ValidateRequest so the
// error handler can answer 400 instead of 500.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, v := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", v.Field(), v.Tag()))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}
