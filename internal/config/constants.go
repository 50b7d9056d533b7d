package config

const (
	// Environment variables
	EnvConfigPath = "ECVERIFY_CONFIG_PATH"
	EnvPlatforms  = "ECVERIFY_PLATFORMS"

	// Verify Defaults
	DefaultPlatformsDir   = "internal/platforms"
	DefaultFixturesSubdir = "testdata"
	DefaultFixturePattern = "*.csv"
	DefaultDelimiter      = ";"
	DefaultManifestFile   = "manifest.json"
	DefaultJobs           = 1
	DefaultTextDiff       = true

	// Reporter Defaults
	DefaultReportFormat = "text"
	DefaultReportTitle  = "ecverify run report"
	DefaultShowPassed   = true

	// Watch Defaults
	DefaultReloadDelayMs = 500

	// Config file lookup
	DefaultConfigFileYAML = "ecverify.yaml"
	DefaultConfigFileJSON = "ecverify.json"

	maxConfigFileSize = 10 * 1024 * 1024
)
