package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindToStatus(t *testing.T) {
	assert.Equal(t, 400, KindValidation.HTTPStatus())
	assert.Equal(t, 401, KindAuth.HTTPStatus())
	assert.Equal(t, 403, KindForbidden.HTTPStatus())
	assert.Equal(t, 404, KindNotFound.HTTPStatus())
	assert.Equal(t, 500, KindStore.HTTPStatus())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindAuth, KindOf(Auth("nope")))
	assert.Equal(t, KindStore, KindOf(errors.New("plain")))

	// Wrapped errors still resolve to their kind.
	wrapped := fmt.Errorf("handler: %w", NotFound("missing"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "missing", Message(NotFound("missing")))
	assert.Equal(t, "Internal server error", Message(errors.New("pq: connection refused")))

	// Store errors surface their safe message, not the wrapped cause.
	err := Store("Failed to fetch books", errors.New("pq: relation does not exist"))
	assert.Equal(t, "Failed to fetch books", Message(err))
	assert.Contains(t, err.Error(), "pq: relation does not exist")
}
