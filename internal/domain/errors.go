package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrBirthDateRequired = errors.New("birthdate is required")
	ErrBirthTimeRequired = errors.New("birthtime is required")
	ErrCityRequired      = errors.New("city is required")
)

// ErrInvalidBirthMoment дата/время рождения не парсятся
type ErrInvalidBirthMoment struct {
	Value string
	Err   error
}

func (e *ErrInvalidBirthMoment) Error() string {
	return fmt.Sprintf("invalid birth date/time %q: %s", e.Value, e.Err)
}

func (e *ErrInvalidBirthMoment) Unwrap() error {
	return e.Err
}

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

// IsValidationError проверяет, относится ли ошибка к проверке входных данных
// (такие ошибки возвращаются клиенту как 400, а не 502)
func IsValidationError(err error) bool {
	var invalidMoment *ErrInvalidBirthMoment
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrBirthDateRequired) ||
		errors.Is(err, ErrBirthTimeRequired) ||
		errors.Is(err, ErrCityRequired) ||
		errors.As(err, &invalidMoment)
}
