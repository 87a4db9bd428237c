package api

import "net/http"

type features struct {
	Search          bool `json:"search"`
	TokenRevocation bool `json:"tokenRevocation"`
}

func featuresHandler(features features) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args{"features": features}.WriteJSON(w)
	}
}
