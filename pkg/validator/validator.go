package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError reports which struct fields failed which rules.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, ferr := range verrs {
		fields = append(fields, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", ferr.Field(), ferr.Tag(), ferr.Param(),
		))
	}
	return &ValidationError{Fields: fields}
}
