package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/records", api.recordsHandler)
	router.HandlerFunc(http.MethodGet, "/api/records/:country", api.countryRecordsHandler)
	router.HandlerFunc(http.MethodGet, "/api/profiles", api.profilesHandler)
	router.HandlerFunc(http.MethodGet, "/api/profiles/:country", api.profileHandler)
	router.HandlerFunc(http.MethodGet, "/api/summary", api.summaryHandler)
	return router
}
