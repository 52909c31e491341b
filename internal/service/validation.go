package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var studentIDPattern = regexp.MustCompile(`^[0-9]{9}$`)

// RegisterValidations installs the record tags used by the loaders.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return studentIDPattern.MatchString(fl.Field().String())
	})
}

func newRecordValidator(v *validator.Validate) *validator.Validate {
	if v == nil {
		v = validator.New()
	}
	if err := RegisterValidations(v); err != nil {
		// only fails for an empty tag or nil func
		panic(err)
	}
	return v
}
