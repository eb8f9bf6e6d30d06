package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes a {"error": msg} JSON body.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
