package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthMoment(t *testing.T) {
	rec := BirthRecord{BirthDate: "1990-04-15", BirthTime: "08:30"}

	moment, err := rec.BirthMoment()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 15, 8, 30, 0, 0, time.UTC), moment)
}

func TestBirthMoment_Invalid(t *testing.T) {
	rec := BirthRecord{BirthDate: "15.04.1990", BirthTime: "08:30"}
	_, err := rec.BirthMoment()
	require.Error(t, err)

	rec = BirthRecord{BirthDate: "1990-04-15", BirthTime: "8:30pm"}
	_, err = rec.BirthMoment()
	require.Error(t, err)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrNameRequired))
	assert.True(t, IsValidationError(ErrCityRequired))
	assert.True(t, IsValidationError(&ErrInvalidBirthMoment{Value: "x", Err: errors.New("parse")}))
	assert.False(t, IsValidationError(errors.New("upstream failure")))
	assert.False(t, IsValidationError(nil))
}

func TestBusinessError(t *testing.T) {
	inner := errors.New("boom")
	wrapped := WrapBusinessError(inner)

	assert.True(t, IsBusinessError(wrapped))
	assert.ErrorIs(t, wrapped, inner)
	assert.Nil(t, WrapBusinessError(nil))
	assert.False(t, IsBusinessError(inner))
}
