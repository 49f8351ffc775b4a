package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("appointment"))

	assert.ErrorIs(t, err, ErrNotFound)

	var nf NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "appointment", nf.Entity)
	assert.Equal(t, "load: appointment not found", err.Error())
}
