package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseFormat(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("reportformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "text", "json":
			return true
		default:
			return false
		}
	})

	// A delimiter is one character that cannot be confused with CSV structure.
	_ = validate.RegisterValidation("delimiter", func(fl validator.FieldLevel) bool {
		d := fl.Field().String()
		if utf8.RuneCountInString(d) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(d)
		return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
	})

	_ = validate.RegisterValidation("globpattern", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	// Platform selectors are globs, optionally negated with a leading "!".
	_ = validate.RegisterValidation("platformpattern", func(fl validator.FieldLevel) bool {
		pattern := strings.TrimPrefix(fl.Field().String(), "!")
		return pattern != "" && doublestar.ValidatePattern(pattern)
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorwrapper.WrapError(err, "configuration validation error")
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", strings.TrimPrefix(e.Namespace(), "GlobalConfig."), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("%w:\n  %s", errorwrapper.ErrInvalidConfiguration, strings.Join(messages, "\n  "))
}
