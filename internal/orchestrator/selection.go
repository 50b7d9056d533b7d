package orchestrator

import (
	"os"
	"strings"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/bmatcuk/doublestar/v4"
)

// Platforms returns the selected platform names in directory order.
// A platform is a directory of the platforms root holding a fixtures directory.
func (r *Runner) Platforms() ([]string, error) {
	root := r.cfg.VerifyConfig.PlatformsDir
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read platforms directory")
	}

	include, exclude, err := splitPatterns(r.patterns())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if info, err := os.Stat(r.fixturesDir(name)); err != nil || !info.IsDir() {
			continue
		}
		if selected(name, include, exclude) {
			names = append(names, name)
		}
	}

	r.logger.Debug().Strs("platforms", names).Msg("Platforms selected")
	return names, nil
}

// patterns returns the active selection: explicit selection first, then the
// environment, then the configuration.
func (r *Runner) patterns() []string {
	if len(r.selection) > 0 {
		return r.selection
	}
	if env := os.Getenv(config.EnvPlatforms); strings.TrimSpace(env) != "" {
		return strings.Split(env, ",")
	}
	return r.cfg.VerifyConfig.Platforms
}

// splitPatterns separates include globs from "!" exclude globs
func splitPatterns(patterns []string) (include, exclude []string, err error) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		target := &include
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			p, target = rest, &exclude
		}
		if !doublestar.ValidatePattern(p) {
			return nil, nil, errorwrapper.NewValidationError("platforms", p, "invalid platform pattern")
		}
		*target = append(*target, p)
	}
	return include, exclude, nil
}

// selected reports whether name matches an include (or there is none) and no exclude
func selected(name string, include, exclude []string) bool {
	for _, p := range exclude {
		if ok, _ := doublestar.Match(p, name); ok {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, p := range include {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// FixturesDir returns the fixture directory of a platform.
func (r *Runner) FixturesDir(name string) string {
	return r.fixturesDir(name)
}
