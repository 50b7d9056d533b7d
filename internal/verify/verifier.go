// Package verify runs a classifier over fixtures and compares every result
// with the expected classification.
package verify

import (
	"context"
	"runtime/debug"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/fixture"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
)

// Outcome summarizes a verification that did not fail.
type Outcome struct {
	// Checked is the number of fixtures whose result was compared.
	Checked int
}

// Verifier evaluates fixtures with one classifier wrapper.
type Verifier struct {
	wrapper  *classifier.Wrapper
	logger   zerolog.Logger
	textDiff bool
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the verifier logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithTextDiff enables character diffs of mismatched string fields.
func WithTextDiff(enabled bool) Option {
	return func(v *Verifier) {
		v.textDiff = enabled
	}
}

// NewVerifier creates a Verifier for the given wrapper.
func NewVerifier(w *classifier.Wrapper, opts ...Option) *Verifier {
	v := &Verifier{
		wrapper:  w,
		logger:   zerolog.Nop(),
		textDiff: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With().Str("component", "Verifier").Str("platform", w.Name()).Logger()
	return v
}

// Verify evaluates fixtures in order and stops at the first failure.
// Failures are *fixture.MalformedError, *classifier.InputError, *RuntimeError
// and *MismatchError; a cancelled context returns its error between fixtures.
func (v *Verifier) Verify(ctx context.Context, fixtures []models.Fixture) (Outcome, error) {
	var out Outcome

	for _, fx := range fixtures {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		rec, err := fixture.Input(fx)
		if err != nil {
			return out, err
		}

		result, err := v.execute(fx, rec)
		if err != nil {
			v.logger.Debug().Err(err).Str("fixture", fx.Location()).Msg("Fixture could not be classified")
			return out, err
		}
		out.Checked++

		comparison := Compare(fx.Expected, result.Fields())
		if !comparison.Passed() {
			mismatch := &MismatchError{Fixture: fx, Comparison: comparison}
			if v.textDiff {
				mismatch.Diffs = stringDiffs(comparison)
			}
			v.logger.Debug().Str("fixture", fx.Location()).Int("mismatched_fields", len(comparison.Mismatches())).Msg("Fixture mismatch")
			return out, mismatch
		}
	}

	v.logger.Debug().Int("checked", out.Checked).Msg("All fixtures matched")
	return out, nil
}

// execute runs the wrapper and turns a classifier panic into a RuntimeError
func (v *Verifier) execute(fx models.Fixture, rec models.InputRecord) (result models.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RuntimeError{Fixture: fx, Value: r, Stack: debug.Stack()}
		}
	}()
	return v.wrapper.Execute(rec)
}
