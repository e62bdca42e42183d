package handler

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/timetable-editor/internal/pkg/errors"
	pkgvalidator "github.com/timetable-editor/internal/pkg/validator"
)

// parseBody разбирает и проверяет тело запроса
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		})
	}
	return validationError(pkgvalidator.Validate(req))
}

// validationError переводит ошибки validator в INVALID_REQUEST с полями
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}
	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return uuid.Nil, errors.ErrSessionNotFound
	}
	return id, nil
}
