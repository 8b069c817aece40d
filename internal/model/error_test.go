package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	verr := fmt.Errorf("op: %w", &ValidationError{Field: "resolution_notes", Redirect: ViewReport})
	assert.ErrorIs(t, verr, ErrValidation)

	var target *ValidationError
	assert.True(t, errors.As(verr, &target))
	assert.Equal(t, ViewReport, target.Redirect)

	cause := errors.New("connection refused")
	aerr := fmt.Errorf("op: %w", NewAdapterError("UpdateOrder", cause))
	assert.ErrorIs(t, aerr, ErrAdapter)
	assert.ErrorIs(t, aerr, cause)

	assert.ErrorIs(t, ErrTimerRunning, ErrConflict)
	assert.ErrorIs(t, ErrNoRunningTimer, ErrNotFound)
	assert.ErrorIs(t, ErrReadOnly, ErrPrecondition)
}
