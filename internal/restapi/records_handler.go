package restapi

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
)

// RecordsData is the payload of the records endpoints.
type RecordsData struct {
	Source  string               `json:"source"`
	Count   int                  `json:"count"`
	Records []dataset.DataRecord `json:"records"`
}

func (api *RestAPI) recordsHandler(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			api.validationErrorResponse(w, r, "year must be an integer")
			return
		}
		year = y
	}

	path, records, err := api.load(r.Context())
	if err != nil {
		api.loadErrorResponse(w, r, err)
		return
	}
	out := make([]dataset.DataRecord, 0, len(records))
	for _, rec := range records {
		if year == 0 || rec.Year == year {
			out = append(out, rec)
		}
	}
	api.sendResponse(w, r, newOKResponse(RecordsData{Source: filepath.Base(path), Count: len(out), Records: out}))
}

func (api *RestAPI) countryRecordsHandler(w http.ResponseWriter, r *http.Request) {
	country := httprouter.ParamsFromContext(r.Context()).ByName("country")

	path, records, err := api.load(r.Context())
	if err != nil {
		api.loadErrorResponse(w, r, err)
		return
	}
	var out []dataset.DataRecord
	for _, rec := range records {
		if rec.Country == country {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		api.notFoundResponse(w, r)
		return
	}
	api.sendResponse(w, r, newOKResponse(RecordsData{Source: filepath.Base(path), Count: len(out), Records: out}))
}
