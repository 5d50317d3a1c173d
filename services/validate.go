package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrValidation ห่อ validation failure ให้ controller แปลงเป็น 400
var ErrValidation = errors.New("validation failed")

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}
