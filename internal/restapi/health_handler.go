package restapi

import "net/http"

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, newOKResponse(map[string]string{"status": "ok"}))
}
