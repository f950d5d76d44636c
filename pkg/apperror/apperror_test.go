package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotFound = NotFound("appointment not found")

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(errNotFound))
	assert.Equal(t, KindBadRequest, KindOf(fmt.Errorf("create: %w", BadRequest("start time must be before end time"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("connection reset")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("boom"))))
}

func TestSentinelIdentity(t *testing.T) {
	wrapped := fmt.Errorf("transition: %w", errNotFound)
	assert.True(t, errors.Is(wrapped, errNotFound))
	assert.False(t, errors.Is(wrapped, NotFound("appointment not found")))
}

func TestMessageOf_HidesInternalDetails(t *testing.T) {
	err := Internal(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "password authentication failed")

	assert.Equal(t, "forbidden", MessageOf(AccessDenied("forbidden")))
	assert.Equal(t, "internal server error", MessageOf(errors.New("raw")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(KindAlreadyExists, "document number already exists", cause)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "document number already exists", MessageOf(err))
	assert.Equal(t, "AlreadyExists", KindAlreadyExists.String())
}
