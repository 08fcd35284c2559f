package v1

import (
	"errors"

	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// bindError turns a gin binding failure into a client error.
func bindError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return apperror.BadRequest(validation.Message(err))
	}
	return apperror.BadRequest("Invalid request body")
}
