package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
)

// History exported for testing purposes
type History struct {
	VDB   databases.VehicleDatabase
	DocDB databases.DocumentDatabase
}

// HistoryHandler returns the aggregated event feed for the authenticated user
func (h History) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	vehicles, err := h.VDB.Find(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}
	documents, err := h.DocDB.Find(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("failed to get documents", http.StatusInternalServerError, w, err)
		return
	}

	history := models.BuildHistory(vehicles, documents)
	if len(history) == 0 {
		history = []models.HistoryItem{}
	}

	b, err := json.Marshal(models.HistoryResponse{History: history})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
