package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodFixtures = "in-url;out-rtype;out-mime;out-unitid\n" +
	"http://a.example.org/a/1;ARTICLE;HTML;1\n" +
	"http://a.example.org/other;;;\n"

func articles(u *models.ParsedURL, _ models.AccessMeta) models.Result {
	var r models.Result
	if id, ok := strings.CutPrefix(u.Path, "/a/"); ok {
		r.Rtype, r.Mime, r.UnitID = models.RtypeArticle, models.MimeHTML, id
	}
	return r
}

func register(reg *classifier.Registry, name string, f classifier.Func) {
	reg.MustRegister(name, func() (classifier.Classifier, error) { return f, nil })
}

// writePlatform creates <root>/<name>/testdata with the given fixture file
// and an optional manifest
func writePlatform(t *testing.T, root, name, fixtures, manifest string) {
	t.Helper()
	dir := filepath.Join(root, name, "testdata")
	require.NoError(t, os.MkdirAll(dir, 0755))
	if fixtures != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".csv"), []byte(fixtures), 0644))
	}
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, name, "manifest.json"), []byte(manifest), 0644))
	}
}

func newRunner(root string, reg *classifier.Registry) *Runner {
	cfg := config.NewDefaultGlobalConfig()
	cfg.VerifyConfig.PlatformsDir = root
	return NewRunner(cfg, reg, zerolog.Nop())
}

func TestPlatforms_Selection(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")
	root := t.TempDir()
	writePlatform(t, root, "alpha", goodFixtures, "")
	writePlatform(t, root, "beta", goodFixtures, "")
	writePlatform(t, root, "gamma", goodFixtures, "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nofixtures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0644))

	tests := []struct {
		name      string
		selection []string
		want      []string
	}{
		{"all", nil, []string{"alpha", "beta", "gamma"}},
		{"include", []string{"beta"}, []string{"beta"}},
		{"glob", []string{"*a"}, []string{"alpha", "beta", "gamma"}},
		{"exclude only", []string{"!alpha"}, []string{"beta", "gamma"}},
		{"include and exclude", []string{"*", "!g*"}, []string{"alpha", "beta"}},
		{"no match", []string{"delta"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newRunner(root, classifier.NewRegistry()).WithSelection(tt.selection).Platforms()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatforms_SelectionSources(t *testing.T) {
	root := t.TempDir()
	writePlatform(t, root, "alpha", goodFixtures, "")
	writePlatform(t, root, "beta", goodFixtures, "")

	t.Run("environment", func(t *testing.T) {
		t.Setenv(config.EnvPlatforms, "beta, ")
		got, err := newRunner(root, classifier.NewRegistry()).Platforms()
		require.NoError(t, err)
		assert.Equal(t, []string{"beta"}, got)
	})

	t.Run("explicit selection wins over environment", func(t *testing.T) {
		t.Setenv(config.EnvPlatforms, "beta")
		got, err := newRunner(root, classifier.NewRegistry()).WithSelection([]string{"alpha"}).Platforms()
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha"}, got)
	})

	t.Run("configuration", func(t *testing.T) {
		t.Setenv(config.EnvPlatforms, "")
		r := newRunner(root, classifier.NewRegistry())
		r.cfg.VerifyConfig.Platforms = []string{"alpha"}
		got, err := r.Platforms()
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha"}, got)
	})
}

func TestPlatforms_Errors(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")

	_, err := newRunner(filepath.Join(t.TempDir(), "missing"), classifier.NewRegistry()).Platforms()
	assert.Error(t, err)

	_, err = newRunner(t.TempDir(), classifier.NewRegistry()).WithSelection([]string{"[a"}).Platforms()
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
}

func TestRun_StatusPerPlatform(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")
	root := t.TempDir()
	reg := classifier.NewRegistry()

	writePlatform(t, root, "good", goodFixtures, `{"name": "good", "longname": "Good Platform"}`)
	register(reg, "good", articles)

	writePlatform(t, root, "mismatch", "in-url;out-rtype\nhttp://a.example.org/a/1;ABS\n", "")
	register(reg, "mismatch", articles)

	writePlatform(t, root, "panics", goodFixtures, "")
	register(reg, "panics", func(*models.ParsedURL, models.AccessMeta) models.Result { panic("boom") })

	writePlatform(t, root, "malformed", "in-url;out-rtype\n;ARTICLE\n", "")
	register(reg, "malformed", articles)

	writePlatform(t, root, "unregistered", goodFixtures, "")

	writePlatform(t, root, "empty", "", `{"longname": "no name"}`)
	register(reg, "empty", articles)

	r := newRunner(root, reg).WithRunID("run-1")
	r.cfg.VerifyConfig.Jobs = 3

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", summary.RunID)
	assert.False(t, summary.Passed())

	got := make(map[string]models.PlatformReport)
	var order []string
	for _, report := range summary.Reports {
		got[report.Name] = report
		order = append(order, report.Name)
	}
	assert.Equal(t, []string{"empty", "good", "malformed", "mismatch", "panics", "unregistered"}, order)

	assert.Equal(t, models.PlatformPassed, got["good"].Status)
	assert.Equal(t, "Good Platform", got["good"].Label)
	assert.Equal(t, 2, got["good"].Fixtures)
	assert.Equal(t, 2, got["good"].Checked)

	assert.Equal(t, models.PlatformPassed, got["empty"].Status)
	assert.Equal(t, "empty", got["empty"].Label)
	assert.Zero(t, got["empty"].Fixtures)

	assert.Equal(t, models.PlatformFailed, got["mismatch"].Status)
	assert.Equal(t, 1, got["mismatch"].Checked)
	assert.Contains(t, got["mismatch"].Error(), "does not match")

	assert.Equal(t, models.PlatformFailed, got["malformed"].Status)
	assert.Equal(t, models.PlatformError, got["panics"].Status)
	assert.Equal(t, models.PlatformError, got["unregistered"].Status)
	assert.ErrorIs(t, got["unregistered"].Err, classifier.ErrUnknownPlatform)

	assert.Equal(t, 2, summary.Count(models.PlatformPassed))
	assert.Equal(t, 2, summary.Count(models.PlatformFailed))
	assert.Equal(t, 2, summary.Count(models.PlatformError))
}

func TestRun_CancelledContextSkipsPlatforms(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")
	root := t.TempDir()
	reg := classifier.NewRegistry()
	writePlatform(t, root, "good", goodFixtures, "")
	register(reg, "good", articles)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := newRunner(root, reg).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, summary.Reports, 1)
	assert.Equal(t, models.PlatformSkipped, summary.Reports[0].Status)
	assert.NotEmpty(t, summary.RunID)
}

func TestDescribe(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")
	root := t.TempDir()
	reg := classifier.NewRegistry()
	writePlatform(t, root, "good", goodFixtures, `{"name": "good", "longname": "Good Platform", "domains": ["example.org"]}`)
	register(reg, "good", articles)
	writePlatform(t, root, "other", "", "")

	infos, err := newRunner(root, reg).Describe(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, PlatformInfo{Name: "good", Label: "Good Platform", Domains: []string{"example.org"}, Fixtures: 2, Registered: true}, infos[0])
	assert.Equal(t, "other", infos[1].Label)
	assert.False(t, infos[1].Registered)
}

func TestDetect(t *testing.T) {
	t.Setenv(config.EnvPlatforms, "")
	root := t.TempDir()
	reg := classifier.NewRegistry()
	writePlatform(t, root, "broad", goodFixtures, `{"name": "broad", "domains": ["example.org"]}`)
	writePlatform(t, root, "narrow", goodFixtures, `{"name": "narrow", "domains": ["www.example.org"]}`)
	writePlatform(t, root, "unregistered", goodFixtures, `{"name": "unregistered", "domains": ["example.net"]}`)
	register(reg, "broad", articles)
	register(reg, "narrow", articles)
	r := newRunner(root, reg)

	name, err := r.Detect("http://www.example.org/a/1")
	require.NoError(t, err)
	assert.Equal(t, "narrow", name)

	name, err = r.Detect("http://journals.example.org/a/1")
	require.NoError(t, err)
	assert.Equal(t, "broad", name)

	_, err = r.Detect("http://www.example.net/a/1")
	assert.ErrorIs(t, err, errorwrapper.ErrNotFound)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, models.PlatformPassed, StatusOf(nil))
	assert.Equal(t, models.PlatformSkipped, StatusOf(context.Canceled))
	assert.Equal(t, models.PlatformFailed, StatusOf(&classifier.InputError{Platform: "x", Err: assert.AnError}))
	assert.Equal(t, models.PlatformError, StatusOf(&classifier.ModuleError{Platform: "x", Err: assert.AnError}))
}
