package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/levelup/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// Place names: letters with inner spaces, dots, hyphens and apostrophes ("St. John's", "Nur-Sultan")
		validate.RegisterValidation("place", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				if i == 0 && !unicode.IsLetter(char) {
					return false
				}
				if !unicode.IsLetter(char) && char != ' ' && char != '-' && char != '\'' && char != '.' {
					return false
				}
			}
			return true
		})
	})
}

// validationError flattens validator output into one error. Fields listed in sentinels
// are reported with their sentinel so callers can match them with errors.Is.
func validationError(err error, sentinels map[string]error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	result := errors.New("validation error: ")
	for _, fieldErr := range fieldErrs {
		if sentinel, ok := sentinels[fieldErr.Field()]; ok {
			result = errors.Join(result, sentinel)
			continue
		}
		result = errors.Join(result, fieldErr)
	}
	return result
}

var placeSentinels = map[string]error{
	"Country": errorvalues.ErrInvalidPlace,
	"City":    errorvalues.ErrInvalidPlace,
}
