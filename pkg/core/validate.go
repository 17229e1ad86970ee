package core

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return v
}

// Validate checks a record against its struct tags and maps failures to the
// package sentinels. Fields are checked in declaration order.
func Validate(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Title":
			return ErrEmptyTitle
		case "Datetime":
			return fmt.Errorf("%w: %q", ErrInvalidDatetime, fe.Value())
		}
	}
	return err
}
