package config

import "unicode/utf8"

// VerifyConfig defines where platforms and fixtures live and how they are verified
type VerifyConfig struct {
	PlatformsDir   string   `json:"platforms_dir,omitempty" yaml:"platforms_dir,omitempty" validate:"required"`
	FixturesSubdir string   `json:"fixtures_subdir,omitempty" yaml:"fixtures_subdir,omitempty" validate:"required"`
	FixturePattern string   `json:"fixture_pattern,omitempty" yaml:"fixture_pattern,omitempty" validate:"required,globpattern"`
	Delimiter      string   `json:"delimiter,omitempty" yaml:"delimiter,omitempty" validate:"delimiter"`
	ManifestFile   string   `json:"manifest_file,omitempty" yaml:"manifest_file,omitempty"`
	Platforms      []string `json:"platforms,omitempty" yaml:"platforms,omitempty" validate:"dive,required,platformpattern"`
	Jobs           int      `json:"jobs,omitempty" yaml:"jobs,omitempty" validate:"min=1,max=64"`
	Debug          bool     `json:"debug" yaml:"debug"`
	TextDiff       bool     `json:"text_diff" yaml:"text_diff"`
}

// NewDefaultVerifyConfig creates default verify configuration
func NewDefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		PlatformsDir:   DefaultPlatformsDir,
		FixturesSubdir: DefaultFixturesSubdir,
		FixturePattern: DefaultFixturePattern,
		Delimiter:      DefaultDelimiter,
		ManifestFile:   DefaultManifestFile,
		Jobs:           DefaultJobs,
		TextDiff:       DefaultTextDiff,
	}
}

// DelimiterRune returns the fixture delimiter as a rune
func (c VerifyConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		r, _ = utf8.DecodeRuneInString(DefaultDelimiter)
	}
	return r
}
