package dto

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateStruct(value interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate.Struct(value)
}
