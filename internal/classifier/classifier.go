// Package classifier defines the contract every platform rule set implements,
// the wrapper that executes it, and the registry that resolves platforms by name.
package classifier

import "github.com/aleister1102/ecverify/internal/models"

// Classifier recognizes the access events of one platform.
//
// Classify must be pure: the same ParsedURL and AccessMeta always give the same
// Result, and no state is kept between calls. It returns an empty Result when no
// rule matches. It must not panic on well-formed input; a panic is a defect of
// the rule set and is never hidden by the Wrapper.
type Classifier interface {
	Classify(u *models.ParsedURL, meta models.AccessMeta) models.Result
}

// Func adapts a plain function to the Classifier interface.
type Func func(u *models.ParsedURL, meta models.AccessMeta) models.Result

// Classify calls f.
func (f Func) Classify(u *models.ParsedURL, meta models.AccessMeta) models.Result {
	return f(u, meta)
}

// Factory builds the Classifier of a platform.
type Factory func() (Classifier, error)
