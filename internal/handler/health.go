package handler

import "net/http"

// Health reports liveness. Storage reachability is implied: the server
// refuses to start when the store cannot be opened.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
