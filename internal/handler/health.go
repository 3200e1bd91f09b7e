package handler

import "net/http"

const livenessMessage = "Dream Jobs Listing Website Server"

// Health handles GET /. A plain text body keeps the root path usable as a
// liveness probe and as the browser-visible landing response.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessMessage))
}
