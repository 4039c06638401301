package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`a,b,c`, []string{"a", "b", "c"}},
		{` a , b ,c `, []string{"a", "b", "c"}},
		{`"x, y",2`, []string{"x, y", "2"}},
		{`"say ""hi""",1`, []string{`say "hi"`, "1"}},
		{`,,`, []string{"", "", ""}},
		{`""`, []string{""}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, splitLine(tc.in), tc.in)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines("\uFEFF  \n\r\n"))
	assert.Equal(t, []string{"h", "a", "b"}, splitLines("\uFEFFh\r\na\n\n  \nb"))
}

func TestParseNumber(t *testing.T) {
	for _, s := range []string{"", " ", "null", "NULL", "NaN", "abc", "Inf", "-Inf", "1e999"} {
		assert.Nil(t, ParseNumber(s), s)
	}
	v := ParseNumber(" 12.5 ")
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)
	v = ParseNumber("-3e2")
	require.NotNil(t, v)
	assert.Equal(t, -300.0, *v)
	v = ParseNumber("0")
	require.NotNil(t, v)
	assert.Equal(t, 0.0, *v)
}

func TestClusterLabel(t *testing.T) {
	assert.Equal(t, "Unlabeled", ClusterLabel(""))
	assert.Equal(t, "Cluster 2", ClusterLabel("2"))
	assert.Equal(t, "Cluster 1.0", ClusterLabel("1.0"))
	assert.Equal(t, "Developing/Volatile", ClusterLabel("Developing/Volatile"))
}

func TestValidCountry(t *testing.T) {
	assert.True(t, validCountry("Norway"))
	assert.False(t, validCountry(""))
	assert.False(t, validCountry("   "))
	assert.False(t, validCountry("AVERAGE of all"))
	assert.False(t, validCountry("Regional TOTAL"))
	assert.True(t, validCountry("Côte d’Ivoire"))
}

func TestFieldTable(t *testing.T) {
	assert.Equal(t, 25, NumFields)
	seen := map[string]bool{}
	for _, f := range Fields {
		assert.NotEmpty(t, f.Name())
		assert.NotEmpty(t, Aliases(f))
		assert.False(t, seen[f.Name()], "duplicate name %s", f.Name())
		seen[f.Name()] = true
		got, ok := FieldByName(f.Name())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "unknown", Field(99).Name())
	_, ok := FieldByName("nope")
	assert.False(t, ok)
}

func TestRecordSetValue(t *testing.T) {
	var r DataRecord
	for i, f := range Fields {
		v := float64(i)
		r.Set(f, &v)
	}
	for i, f := range Fields {
		require.NotNil(t, r.Value(f))
		assert.Equal(t, float64(i), *r.Value(f))
	}
	assert.Equal(t, 2.0, *r.OverallScore)
	assert.Equal(t, 24.0, *r.PopDensSqKm)
	r.Set(GDP, nil)
	assert.Nil(t, r.GDP)
}
