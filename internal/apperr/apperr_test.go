package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/lumen/internal/apperr"
)

var errSample = &apperr.Error{Message: "preset %q not found"}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("Deep Work")

	assert.Equal(t, `preset "Deep Work" not found`, err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.NotErrorIs(t, err, &apperr.Error{Message: "preset %q not found"})
}

func TestWrapKeepsCause(t *testing.T) {
	err := errSample.Fmt("x").Wrap(io.EOF)

	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, `preset "x" not found: EOF`, err.Error())

	var target *apperr.Error
	assert.True(t, errors.As(err, &target))
}
