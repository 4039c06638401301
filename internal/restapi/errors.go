package restapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
)

func (api *RestAPI) errorResponse(w http.ResponseWriter, r *http.Request, code int, text string) {
	api.sendResponse(w, r, ResponseModel{
		Code:        code,
		CurrentTime: time.Now().UnixMilli(),
		Text:        text,
		Version:     apiVersion,
	})
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)
	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "resource not found")
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.errorResponse(w, r, http.StatusBadRequest, text)
}

// loadErrorResponse maps dataset failures: a missing or empty file means the
// data is unavailable, anything else is a server error.
func (api *RestAPI) loadErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dataset.ErrFileNotFound) || errors.Is(err, dataset.ErrEmptyFile) {
		logging.LogError(logging.FromContext(r.Context()), "dataset unavailable", err)
		api.errorResponse(w, r, http.StatusServiceUnavailable, "data unavailable")
		return
	}
	api.serverErrorResponse(w, r, err)
}
