package restapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// ResponseModel is the envelope for every API response.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Data        any    `json:"data,omitempty"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

const apiVersion = 1

func newOKResponse(data any) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: time.Now().UnixMilli(),
		Data:        data,
		Text:        "OK",
		Version:     apiVersion,
	}
}

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}
