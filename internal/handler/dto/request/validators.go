package request

import (
	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by request DTOs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("period", validPeriod); err != nil {
		return errs.Wrap(err, "failed to register period validator")
	}
	return nil
}

func validPeriod(fl validator.FieldLevel) bool {
	return pricing.PeriodType(fl.Field().String()).IsValid()
}
