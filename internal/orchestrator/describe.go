package orchestrator

import (
	"context"
	"fmt"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/urlhandler"
)

// PlatformInfo is the listing entry of a platform.
type PlatformInfo struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Domains    []string `json:"domains,omitempty"`
	Fixtures   int      `json:"fixtures"`
	Registered bool     `json:"registered"`
	Err        error    `json:"-"`
}

// Describe lists every selected platform with its label and fixture count.
// A platform whose fixtures cannot be read is listed with its error.
func (r *Runner) Describe(ctx context.Context) ([]PlatformInfo, error) {
	names, err := r.Platforms()
	if err != nil {
		return nil, err
	}

	infos := make([]PlatformInfo, 0, len(names))
	for _, name := range names {
		info := PlatformInfo{Name: name, Label: r.label(name), Registered: r.registry.Has(name)}
		if m, err := r.Manifest(name); err == nil {
			info.Domains = m.Domains
		}
		fixtures, err := r.Loader().Load(ctx, r.fixturesDir(name))
		if err != nil {
			info.Err = err
		}
		info.Fixtures = len(fixtures)
		infos = append(infos, info)
	}
	return infos, nil
}

// Detect returns the registered platform whose manifest domains best match
// the host of rawURL. Ties go to the first platform in directory order.
func (r *Runner) Detect(rawURL string) (string, error) {
	u, err := urlhandler.Parse(rawURL)
	if err != nil {
		return "", err
	}

	names, err := r.Platforms()
	if err != nil {
		return "", err
	}

	best, bestMatch := "", urlhandler.MatchNone
	for _, name := range names {
		if !r.registry.Has(name) {
			continue
		}
		m, err := r.Manifest(name)
		if err != nil {
			continue
		}
		if grade := urlhandler.BestDomainMatch(u.Hostname, m.Domains); grade > bestMatch {
			best, bestMatch = name, grade
		}
	}

	if best == "" {
		return "", fmt.Errorf("no platform serves host %q: %w", u.Hostname, errorwrapper.ErrNotFound)
	}
	r.logger.Debug().Str("host", u.Hostname).Str("platform", best).Msg("Platform detected")
	return best, nil
}
