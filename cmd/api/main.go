package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/MichaelTeekey/job-finder/internal/server"
)

// @title Job Finder API
// @version 1.0
// @description Job board backend connecting students, employers and administrators.
// @BasePath /
func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %s", err)
	}
}
