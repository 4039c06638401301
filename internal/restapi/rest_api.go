// Package restapi serves the loaded dataset, country profiles and summary
// over HTTP. Every request re-reads the CSV and re-clusters; nothing is cached.
package restapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
)

type RestAPI struct {
	// Candidates are the dataset paths tried on each request, first match wins.
	Candidates []string
	Logger     *slog.Logger
}

// NewRestAPI creates a RestAPI reading from candidates.
func NewRestAPI(candidates []string, logger *slog.Logger) *RestAPI {
	if logger == nil {
		logger = logging.Discard()
	}
	return &RestAPI{Candidates: candidates, Logger: logger}
}

// load locates and parses the dataset. The returned path is the file read.
func (api *RestAPI) load(ctx context.Context) (string, []dataset.DataRecord, error) {
	logger := logging.FromContext(ctx)
	path, err := dataset.Locate(api.Candidates)
	if err != nil {
		return "", nil, err
	}
	records, err := dataset.LoadFile(path, dataset.WithLogger(logger))
	if err != nil {
		return "", nil, err
	}
	return path, records, nil
}

func (api *RestAPI) cluster(ctx context.Context, records []dataset.DataRecord) map[string]profile.CountryProfile {
	return profile.ClusterCountries(records, profile.WithLogger(logging.FromContext(ctx)))
}

// Handler returns the routed API wrapped in request logging.
func (api *RestAPI) Handler() http.Handler {
	return NewRequestLoggingMiddleware(api.Logger)(api.routes())
}
