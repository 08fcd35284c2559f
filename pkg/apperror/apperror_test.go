package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("disk full")

	assert.Equal(t, http.StatusBadRequest, StatusCode(BadRequest("x")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(TooLarge("x")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("x")))
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(TooManyRequests("x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(Internal(cause)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(cause))

	wrapped := fmt.Errorf("delete cv: %w", NotFound("CV not found"))
	assert.True(t, IsNotFound(wrapped))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("open /var/data/jobify_cvs.json: permission denied")

	err := Internal(cause)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)

	err = InternalMsg("Failed to save CV", cause)
	assert.Equal(t, "Failed to save CV", err.Error())
	assert.ErrorIs(t, err, cause)
}
