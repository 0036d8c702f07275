package stationdir

import (
	"encoding/json"
	"net/http"

	"github.com/railkit/stationdir/cache"
	"github.com/railkit/stationdir/stations"
)

type healthResponse struct {
	Status        string              `json:"status"`
	UptimeSeconds int64               `json:"uptime_seconds"`
	Stations      int                 `json:"stations"`
	Cities        int                 `json:"cities"`
	MissingCoords int                 `json:"missing_coordinates"`
	Load          stations.LoadReport `json:"load"`
	Cache         cache.Stats         `json:"cache"`
}

func (f *Finder) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	st := f.Stats()
	resp := healthResponse{
		Status:        "ok",
		UptimeSeconds: st.UptimeSeconds,
		Stations:      st.Stations,
		Cities:        st.Cities,
		MissingCoords: st.MissingCoords,
		Load:          st.Load,
		Cache:         st.Cache,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
