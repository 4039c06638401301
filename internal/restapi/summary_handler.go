package restapi

import (
	"net/http"
	"path/filepath"

	"github.com/KaramelBytes/urbanpulse-cli/internal/analysis"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	path, records, err := api.load(r.Context())
	if err != nil {
		api.loadErrorResponse(w, r, err)
		return
	}
	s := analysis.Summarize(records, api.cluster(r.Context(), records))
	s.Name = filepath.Base(path)
	api.sendResponse(w, r, newOKResponse(s))
}
