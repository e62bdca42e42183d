package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/timetable-editor/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("hhmm", validateHHMM)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// validateHHMM - время в формате HH:MM (00:00-23:59)
func validateHHMM(fl validator.FieldLevel) bool {
	return domain.ValidClock(fl.Field().String())
}
