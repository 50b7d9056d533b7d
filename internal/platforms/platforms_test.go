package platforms

import (
	"context"
	"errors"
	"testing"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/fixture"
	"github.com/aleister1102/ecverify/internal/manifest"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/platforms/emerald"
	"github.com/aleister1102/ecverify/internal/platforms/hw"
	"github.com/aleister1102/ecverify/internal/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{
		"biblioteca", "emerald", "europresse", "hw", "lexisnexis", "oso", "ovid", "pr", "seg",
	}, Registry().Names())
}

func TestPlatforms_Fixtures(t *testing.T) {
	reg := Registry()
	loader := fixture.NewLoader()

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			w, err := reg.Open(name)
			require.NoError(t, err)

			fixtures, err := loader.Load(context.Background(), name+"/testdata")
			require.NoError(t, err)
			require.NotEmpty(t, fixtures)

			out, err := verify.NewVerifier(w).Verify(context.Background(), fixtures)
			require.NoError(t, err)
			assert.Equal(t, len(fixtures), out.Checked)
		})
	}
}

func TestPlatforms_Manifests(t *testing.T) {
	for _, name := range Registry().Names() {
		t.Run(name, func(t *testing.T) {
			m, err := manifest.Load(name, "manifest.json")
			require.NoError(t, err)
			assert.Equal(t, name, m.Name)
			assert.NotEmpty(t, m.Domains)
			assert.NotEqual(t, name, manifest.Label(m, name))
		})
	}
}

func execute(t *testing.T, name string, rec models.InputRecord) models.Result {
	t.Helper()
	w, err := Registry().Open(name)
	require.NoError(t, err)
	result, err := w.Execute(rec)
	require.NoError(t, err)
	return result
}

func TestEmerald_PercentEncodedDOI(t *testing.T) {
	result := execute(t, emerald.Name, models.InputRecord{
		URL: "http://www.emeraldinsight.com/doi/full/10.1108/S0065-2830%282012%2935",
	})

	assert.Equal(t, map[string]any{
		"rtype":             "ARTICLE",
		"mime":              "HTML",
		"unitid":            "S0065-2830(2012)35",
		"doi":               "10.1108/S0065-2830(2012)35",
		"online_identifier": "0065-2830",
		"publication_date":  "2012",
	}, result.Fields())
}

func TestHW_SmallPageIsDenied(t *testing.T) {
	size := int64(5000)
	result := execute(t, hw.Name, models.InputRecord{
		URL:  "http://jco.ascopubs.org/content/6/4/458.full",
		Meta: models.AccessMeta{Size: &size},
	})

	assert.Equal(t, "ARTICLE", result.Rtype)
	assert.Equal(t, "HTML", result.Mime)
	assert.Equal(t, "jco.ascopubs.org/6/4/458", result.UnitID)
	assert.Equal(t, "jco.ascopubs.org", result.TitleID)
	require.NotNil(t, result.Granted)
	assert.False(t, *result.Granted)
}

func TestHW_AllOrNothing(t *testing.T) {
	size := int64(500)
	for _, url := range []string{
		"http://www.molbiolcell.org/about/editorial-board",
		"http://www.molbiolcell.org/doi/suppl/10.1091/mbc.e09-12-1011",
		"http://jco.ascopubs.org/content/6/4/458.full?abspop=1",
	} {
		result := execute(t, hw.Name, models.InputRecord{URL: url, Meta: models.AccessMeta{Size: &size}})
		assert.True(t, result.IsEmpty(), url)
	}
}

func TestHW_FixtureMismatchIsReported(t *testing.T) {
	w, err := Registry().Open(hw.Name)
	require.NoError(t, err)

	_, err = verify.NewVerifier(w).Verify(context.Background(), []models.Fixture{{
		Source: "hw.csv",
		Line:   2,
		Input:  map[string]string{"url": "http://stke.sciencemag.org/content/6/4/458"},
		Expected: map[string]any{
			"rtype": "ARTICLE", "mime": "HTML", "title_id": "stke.sciencemag.org",
			"unitid": "stke.sciencemag.org/6/4/458", "vol": "6", "issue": "4", "first_page": "458",
		},
	}})

	var mismatch *verify.MismatchError
	require.True(t, errors.As(err, &mismatch))
	mismatched := mismatch.Comparison.Mismatches()
	require.Len(t, mismatched, 1)
	assert.Equal(t, "rtype", mismatched[0].Field)
	assert.Equal(t, "ABS", mismatched[0].Actual)
}

func TestRegistry_UnknownPlatform(t *testing.T) {
	_, err := Registry().Open("nope")
	var moduleErr *classifier.ModuleError
	require.ErrorAs(t, err, &moduleErr)
	assert.ErrorIs(t, err, classifier.ErrUnknownPlatform)
}
