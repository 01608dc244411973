package ledgerdelivery

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// ValidEventType validates whether the event type is supported.
var ValidEventType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.IsSupportedKind(t)
	}
	return false
}

// RegisterValidators registers the custom binding validators with gin.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	return v.RegisterValidation("eventtype", ValidEventType)
}
