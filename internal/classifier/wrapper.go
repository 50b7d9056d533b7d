package classifier

import (
	"sync/atomic"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Wrapper executes a Classifier on input records and owns its debug flag.
type Wrapper struct {
	name       string
	classifier Classifier
	logger     zerolog.Logger
	debug      atomic.Bool
}

// WrapperOption configures a Wrapper.
type WrapperOption func(*Wrapper)

// WithLogger sets the logger receiving debug traces.
func WithLogger(logger zerolog.Logger) WrapperOption {
	return func(w *Wrapper) {
		w.logger = logger
	}
}

// WithDebug sets the initial debug mode.
func WithDebug(enabled bool) WrapperOption {
	return func(w *Wrapper) {
		w.debug.Store(enabled)
	}
}

// NewWrapper wraps c under the given platform name.
func NewWrapper(name string, c Classifier, opts ...WrapperOption) *Wrapper {
	w := &Wrapper{
		name:       name,
		classifier: c,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With().Str("component", "Classifier").Str("platform", name).Logger()
	return w
}

// Name returns the platform name.
func (w *Wrapper) Name() string {
	return w.name
}

// DebugMode toggles tracing of analyzed inputs for this wrapper only.
func (w *Wrapper) DebugMode(enabled bool) {
	w.debug.Store(enabled)
}

// Debug reports whether debug mode is on.
func (w *Wrapper) Debug() bool {
	return w.debug.Load()
}

// Execute classifies one input record and returns the classifier result verbatim.
// The only error is an input URL that cannot be parsed. Panics raised by the
// classifier are not recovered.
func (w *Wrapper) Execute(rec models.InputRecord) (models.Result, error) {
	if w.debug.Load() {
		event := w.logger.Log().Str("url", rec.URL)
		if rec.Meta.Size != nil {
			event = event.Int64("size", *rec.Meta.Size)
		}
		event.Msg("Analyzing")
	}

	parsedURL, err := urlhandler.Parse(rec.URL)
	if err != nil {
		return models.Result{}, &InputError{Platform: w.name, URL: rec.URL, Err: err}
	}

	return w.classifier.Classify(parsedURL, rec.Meta), nil
}
