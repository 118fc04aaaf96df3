package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
)

// Stats exported for testing purposes
type Stats struct {
	VDB   databases.VehicleDatabase
	DocDB databases.DocumentDatabase
}

// StatsHandler returns the dashboard counters for the authenticated user
func (s Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	vehicles, err := s.VDB.Find(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}
	documents, err := s.DocDB.Count(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("failed to count documents", http.StatusInternalServerError, w, err)
		return
	}

	stats := models.ComputeStats(vehicles, int(documents))

	b, err := json.Marshal(models.StatsResponse{Stats: stats})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
