package http

import (
	"net/http"
	"strconv"
)

// queryString returns a pointer to the query value, or nil when absent.
func queryString(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// queryInt parses an integer query value, falling back when absent or invalid.
func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
