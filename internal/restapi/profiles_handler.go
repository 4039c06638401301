package restapi

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
)

// ProfilesData is the payload of GET /api/profiles.
type ProfilesData struct {
	Count    int                      `json:"count"`
	Stable   int                      `json:"stable"`
	Volatile int                      `json:"volatile"`
	Profiles []profile.CountryProfile `json:"profiles"`
}

func (api *RestAPI) profilesHandler(w http.ResponseWriter, r *http.Request) {
	_, records, err := api.load(r.Context())
	if err != nil {
		api.loadErrorResponse(w, r, err)
		return
	}
	profiles := api.cluster(r.Context(), records)

	data := ProfilesData{Profiles: make([]profile.CountryProfile, 0, len(profiles))}
	for _, p := range profiles {
		data.Profiles = append(data.Profiles, p)
		if p.Stable() {
			data.Stable++
		} else {
			data.Volatile++
		}
	}
	sort.Slice(data.Profiles, func(i, j int) bool { return data.Profiles[i].Country < data.Profiles[j].Country })
	data.Count = len(data.Profiles)
	api.sendResponse(w, r, newOKResponse(data))
}

func (api *RestAPI) profileHandler(w http.ResponseWriter, r *http.Request) {
	country := httprouter.ParamsFromContext(r.Context()).ByName("country")

	_, records, err := api.load(r.Context())
	if err != nil {
		api.loadErrorResponse(w, r, err)
		return
	}
	p, ok := api.cluster(r.Context(), records)[country]
	if !ok {
		api.notFoundResponse(w, r)
		return
	}
	api.sendResponse(w, r, newOKResponse(p))
}
