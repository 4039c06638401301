package dataset_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func parse(t *testing.T, content string) []dataset.DataRecord {
	t.Helper()
	recs, err := dataset.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return recs
}

func TestParseQuotedComma(t *testing.T) {
	recs := parse(t, "Country,Year,urban_pop_perc\n\"Country, Republic of\",2019,55.2\n")
	require.Len(t, recs, 1)
	assert.Equal(t, "Country, Republic of", recs[0].Country)
	assert.Equal(t, 2019, recs[0].Year)
	require.NotNil(t, recs[0].UrbanPopPerc)
	assert.InDelta(t, 55.2, *recs[0].UrbanPopPerc, 1e-12)
}

func TestParseEscapedQuotesAndTrim(t *testing.T) {
	recs := parse(t, "Country,Year\n\"  Cote \"\"Ivory\"\" \" , 2010 \n")
	require.Len(t, recs, 1)
	assert.Equal(t, `Cote "Ivory"`, recs[0].Country)
	assert.Equal(t, 2010, recs[0].Year)
}

func TestParseBOMAndCRLF(t *testing.T) {
	recs := parse(t, "\uFEFFCountry,Year,gdp\r\nNorway,2015,100\r\n\r\nPeru,2016,20\r\n")
	require.Len(t, recs, 2)
	assert.Equal(t, "Norway", recs[0].Country)
	require.NotNil(t, recs[1].GDP)
	assert.Equal(t, 20.0, *recs[1].GDP)
}

func TestParsePadsShortRows(t *testing.T) {
	recs := parse(t, "Country,Year,gdp,total_pop\nChile,2012\n")
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].GDP)
	assert.Nil(t, recs[0].TotalPop)
	assert.Equal(t, dataset.UnlabeledCluster, recs[0].ClusterLabel)
}

func TestParseAliasResolution(t *testing.T) {
	a := parse(t, "Country,Year,urban_pop_perc\nKenya,2011,27.5\n")
	b := parse(t, "Country,Year,urban_pop_%\nKenya,2011,27.5\n")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	require.NotNil(t, a[0].UrbanPopPerc)
	require.NotNil(t, b[0].UrbanPopPerc)
	assert.Equal(t, *a[0].UrbanPopPerc, *b[0].UrbanPopPerc)
}

func TestParseAliasPriority(t *testing.T) {
	// The first alias wins when present and non-empty; an empty first alias
	// falls through to the next spelling.
	recs := parse(t, "country,year,overall score,overall_score\nA,2010,1.5,9\nB,2010,,2.5\n")
	require.Len(t, recs, 2)
	assert.Equal(t, 1.5, *recs[0].OverallScore)
	assert.Equal(t, 2.5, *recs[1].OverallScore)
}

func TestParseNumericNulls(t *testing.T) {
	recs := parse(t, "Country,Year,gdp,total_pop,gini_coef,homicide_rate,violent_crime\nFiji,2014,null,NULL,NaN,abc,Inf\n")
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Nil(t, r.GDP)
	assert.Nil(t, r.TotalPop)
	assert.Nil(t, r.GiniCoefficient)
	assert.Nil(t, r.HomicideRate)
	assert.Nil(t, r.ViolentCrime)
}

func TestParseRowFilter(t *testing.T) {
	content := strings.Join([]string{
		"Country,Year,gdp",
		"\"Average (ultra-urban)\",2019,1",
		"World Total,2019,1",
		"Summary,2019,1",
		"Cluster Analysis,2019,1",
		"ultra-urban,2019,1",
		",2019,1",
		"Nepal,,1",
		"Nepal,n/a,1",
		strings.Repeat("x", 51) + ",2019,1",
		strings.Repeat("y", 50) + ",2019,1",
		"Nepal,2019.0,1",
	}, "\n")
	recs := parse(t, content)
	require.Len(t, recs, 2)
	assert.Equal(t, strings.Repeat("y", 50), recs[0].Country)
	assert.Equal(t, "Nepal", recs[1].Country)
	assert.Equal(t, 2019, recs[1].Year)
}

func TestParseClusterLabel(t *testing.T) {
	recs := parse(t, strings.Join([]string{
		"Country,Year,Cluster_Label,cluster",
		"A,2010,1,",
		"B,2010,Rich/Stable,",
		"C,2010,,0",
		"D,2010,,",
	}, "\n"))
	require.Len(t, recs, 4)
	assert.Equal(t, "Cluster 1", recs[0].ClusterLabel)
	assert.Equal(t, "Rich/Stable", recs[1].ClusterLabel)
	assert.Equal(t, "Cluster 0", recs[2].ClusterLabel)
	assert.Equal(t, "Unlabeled", recs[3].ClusterLabel)
}

func TestParseEmpty(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader("\uFEFF \r\n\n  \n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyFile)
}

func TestParseHeaderOnly(t *testing.T) {
	recs := parse(t, "Country,Year\n")
	assert.Empty(t, recs)
}

func TestParsePreservesOrder(t *testing.T) {
	recs := parse(t, "Country,Year\nB,2011\nA,2010\nB,2010\n")
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"B", "A", "B"}, []string{recs[0].Country, recs[1].Country, recs[2].Country})
	assert.Equal(t, 2011, recs[0].Year)
}

func TestLocateFirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	cands := dataset.DefaultCandidates(dir)
	second := writeCSV(t, dir, filepath.Join("public", "Data", dataset.DefaultFileName), "Country,Year\nA,2010\n")
	third := writeCSV(t, dir, filepath.Join("public", dataset.DefaultFileName), "Country,Year\nB,2010\n")

	got, err := dataset.Locate(cands)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, os.Remove(second))
	got, err = dataset.Locate(cands)
	require.NoError(t, err)
	assert.Equal(t, third, got)
}

func TestLocateSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "public", "data", "data.csv"), 0o755))
	_, err := dataset.Locate(dataset.DefaultCandidates(dir))
	assert.ErrorIs(t, err, dataset.ErrFileNotFound)
}

func TestLoadNotFound(t *testing.T) {
	_, err := dataset.Load(dataset.DefaultCandidates(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrFileNotFound))
	assert.Contains(t, err.Error(), "data.csv")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := dataset.LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, dataset.ErrFileNotFound)
}

func TestLoadEmptyFile(t *testing.T) {
	p := writeCSV(t, t.TempDir(), "empty.csv", "\n\n")
	_, err := dataset.LoadFile(p)
	assert.ErrorIs(t, err, dataset.ErrEmptyFile)
}

func TestLoadWithLogger(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, filepath.Join("public", "data", "data.csv"), "Country,Year\nA,2010\nTotal,2010\n")
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelDebug)

	withLog, err := dataset.Load(dataset.DefaultCandidates(dir), dataset.WithLogger(logger))
	require.NoError(t, err)
	without, err := dataset.Load(dataset.DefaultCandidates(dir))
	require.NoError(t, err)

	assert.Equal(t, without, withLog)
	assert.Contains(t, buf.String(), `"msg":"dataset_parsed"`)
	assert.Contains(t, buf.String(), `"kept":1`)
	assert.Contains(t, buf.String(), `"dropped":1`)
}
