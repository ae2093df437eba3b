package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// verticalInfo is the lightweight descriptor served for verticals whose full
// back ends have not launched yet. They respond so the navigation surface is
// complete, and report their rollout status.
type verticalInfo struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

var verticals = map[string]verticalInfo{
	"taxi": {
		Service:     "taxi",
		Status:      "coming_soon",
		Description: "On-demand rides across Brazzaville and Pointe-Noire.",
	},
	"covoiturage": {
		Service:     "covoiturage",
		Status:      "coming_soon",
		Description: "Shared intercity trips with verified drivers.",
	},
	"explorer": {
		Service:     "explorer",
		Status:      "coming_soon",
		Description: "Discover restaurants, events and places nearby.",
	},
	"messages": {
		Service:     "messages",
		Status:      "coming_soon",
		Description: "In-app conversations with drivers and restaurants.",
	},
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name": "buntudelice",
		"services": []string{
			"delivery", "taxi", "covoiturage", "explorer", "wallet",
		},
	})
}

// orderDemo serves the sample order used by the public landing page, so the
// flow can be previewed without an account.
func (h *Handler) orderDemo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"restaurant_name": "Chez Mama Congo",
		"items": []map[string]any{
			{"name": "Poulet Moambe", "quantity": 1, "price": 5500},
			{"name": "Saka Saka", "quantity": 2, "price": 2000},
		},
		"total_amount":    9500,
		"status":          "delivered",
		"payment_status":  "completed",
		"delivery_status": "delivered",
	})
}

func (h *Handler) vertical(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, ok := verticals[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func (h *Handler) taxiRide(w http.ResponseWriter, r *http.Request) {
	rideID := mux.Vars(r)["rideId"]
	writeJSON(w, http.StatusOK, map[string]any{
		"ride_id": rideID,
		"status":  "unavailable",
		"message": "taxi dispatch has not launched in this region yet",
	})
}
