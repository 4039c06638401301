package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
)

// writeCSV writes a dataset where each country has every indicator set to
// base+year offset, plus an overall score override.
func writeCSV(t *testing.T, rows map[string]float64) string {
	t.Helper()
	header := []string{"Country", "Year", "Cluster_Label"}
	for _, f := range dataset.Fields {
		header = append(header, fmt.Sprintf("%q", dataset.Aliases(f)[0]))
	}
	lines := []string{strings.Join(header, ",")}
	for _, country := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		base, ok := rows[country]
		if !ok {
			continue
		}
		for _, year := range []int{2019, 2020} {
			cells := []string{country, fmt.Sprint(year), "2"}
			for range dataset.Fields {
				cells = append(cells, fmt.Sprint(base+float64(year-2019)))
			}
			lines = append(lines, strings.Join(cells, ","))
		}
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func fixtureAPI(t *testing.T) *RestAPI {
	path := writeCSV(t, map[string]float64{"Alpha": 1, "Beta": 2, "Gamma": 20, "Delta": 21})
	return NewRestAPI([]string{path}, nil)
}

func serveAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, ResponseModel, json.RawMessage) {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var envelope struct {
		ResponseModel
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope.ResponseModel, envelope.Data
}

func TestHealthz(t *testing.T) {
	resp, model, data := serveAndRetrieveEndpoint(t, NewRestAPI(nil, nil), "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(data))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRecordsEndpoint(t *testing.T) {
	api := fixtureAPI(t)
	resp, model, raw := serveAndRetrieveEndpoint(t, api, "/api/records")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 1, model.Version)

	var data RecordsData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, "data.csv", data.Source)
	assert.Equal(t, 8, data.Count)
	assert.Equal(t, "Alpha", data.Records[0].Country)
	assert.Equal(t, "Cluster 2", data.Records[0].ClusterLabel)

	_, _, raw = serveAndRetrieveEndpoint(t, api, "/api/records?year=2020")
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, 4, data.Count)
	for _, r := range data.Records {
		assert.Equal(t, 2020, r.Year)
	}
}

func TestRecordsEndpointRejectsBadYear(t *testing.T) {
	resp, model, _ := serveAndRetrieveEndpoint(t, fixtureAPI(t), "/api/records?year=soon")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, http.StatusBadRequest, model.Code)
}

func TestCountryRecordsEndpoint(t *testing.T) {
	api := fixtureAPI(t)
	resp, _, raw := serveAndRetrieveEndpoint(t, api, "/api/records/Gamma")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data RecordsData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, 2, data.Count)

	resp, model, _ := serveAndRetrieveEndpoint(t, api, "/api/records/Atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestProfilesEndpoint(t *testing.T) {
	resp, _, raw := serveAndRetrieveEndpoint(t, fixtureAPI(t), "/api/profiles")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Count    int              `json:"count"`
		Stable   int              `json:"stable"`
		Volatile int              `json:"volatile"`
		Profiles []map[string]any `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, 4, data.Count)
	assert.Equal(t, 2, data.Stable)
	assert.Equal(t, 2, data.Volatile)
	require.Len(t, data.Profiles, 4)
	assert.Equal(t, "Alpha", data.Profiles[0]["country"])

	labels := map[string]any{}
	for _, p := range data.Profiles {
		labels[p["country"].(string)] = p["clusterLabel"]
	}
	assert.Equal(t, "Stable Urbanizers", labels["Alpha"])
	assert.Equal(t, "Stable Urbanizers", labels["Beta"])
	assert.Equal(t, "Volatile Urbanizers", labels["Gamma"])
	assert.Equal(t, "Volatile Urbanizers", labels["Delta"])
}

func TestProfileEndpoint(t *testing.T) {
	api := fixtureAPI(t)
	resp, _, raw := serveAndRetrieveEndpoint(t, api, "/api/profiles/"+url.PathEscape("Delta"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p map[string]any
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, "Delta", p["country"])
	assert.Equal(t, 21.5, p["gdp"])

	resp, _, _ = serveAndRetrieveEndpoint(t, api, "/api/profiles/Atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSummaryEndpoint(t *testing.T) {
	resp, _, raw := serveAndRetrieveEndpoint(t, fixtureAPI(t), "/api/summary")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var s map[string]any
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "data.csv", s["name"])
	assert.Equal(t, float64(4), s["countries"])
	assert.Equal(t, float64(2020), s["latestYear"])
	assert.Len(t, s["clusters"], 2)
}

func TestMissingDatasetIsUnavailable(t *testing.T) {
	api := NewRestAPI([]string{filepath.Join(t.TempDir(), "nope.csv")}, nil)
	for _, endpoint := range []string{"/api/records", "/api/records/Alpha", "/api/profiles", "/api/profiles/Alpha", "/api/summary"} {
		resp, model, _ := serveAndRetrieveEndpoint(t, api, endpoint)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, endpoint)
		assert.Equal(t, "data unavailable", model.Text, endpoint)
	}
}

func TestEmptyDatasetIsUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	resp, _, _ := serveAndRetrieveEndpoint(t, NewRestAPI([]string{path}, nil), "/api/summary")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	api := NewRestAPI(nil, nil)
	resp, model, _ := serveAndRetrieveEndpoint(t, api, "/api/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/summary", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	NewRestAPI(nil, nil).Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
