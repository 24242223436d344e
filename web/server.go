// Package web serves the liveness endpoints hosting platforms probe while
// the bot runs its polling loop.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the health-check router.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","message":"SAT Kyrgyz bot is running"}`))
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

// Serve blocks listening on the given port.
func Serve(port string) error {
	log.Printf("Health server listening on :%s", port)
	return http.ListenAndServe(":"+port, NewRouter())
}
