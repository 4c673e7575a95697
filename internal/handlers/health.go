package handlers

import (
	"encoding/json"
	"net/http"
)

// healthResponse is the fixed liveness payload. It must stay {"status":"ok"}.
type healthResponse struct {
	Status string `json:"status"`
}

// Health responds with status 200 to indicate the service is running. It does
// no I/O beyond writing the response and is safe for concurrent use.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}
