package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
	"github.com/cardock/cardock-api/storage"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	DB    databases.VehicleDatabase
	DocDB databases.DocumentDatabase
	Blob  storage.BlobStore
}

// VehiclesHandler returns all vehicles owned by the authenticated user
func (v Vehicle) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	dbResp, err := v.DB.Find(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Vehicles exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Vehicle{}
	}
	b, err := json.Marshal(models.VehicleListResponse{Vehicles: dbResp})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateVehicleHandler creates a vehicle
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	now := time.Now().UTC()
	vehicle.ID = uuid.New().String()
	vehicle.UserID = userID
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	// statuses are derived here, whatever the client sent is discarded
	vehicle.RefreshStatuses()

	if err := v.DB.Upsert(r.Context(), vehicle); err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugw("vehicle created", "vehicleId", vehicle.ID, "userId", userID)

	b, err := json.Marshal(models.VehicleResponse{Vehicle: vehicle})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateVehicleHandler updates a vehicle's details
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	vehicleID := mux.Vars(r)["vehicle_id"]

	existing, err := v.DB.FindOne(r.Context(), userID, vehicleID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("vehicle not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get vehicle", http.StatusInternalServerError, w, err)
		return
	}

	// decode onto a copy of the stored record so omitted fields keep
	// their prior values
	updated := *existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.RefreshStatuses()

	if err := v.DB.Upsert(r.Context(), updated); err != nil {
		config.ErrorStatus("failed to update vehicle", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.VehicleResponse{Vehicle: updated})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteVehicleHandler deletes a vehicle and cascades to its documents
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	vehicleID := mux.Vars(r)["vehicle_id"]

	err := v.DB.DeleteOne(r.Context(), userID, vehicleID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("vehicle not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete vehicle", http.StatusInternalServerError, w, err)
		return
	}

	// cascade: orphaned documents are useless once the vehicle is gone
	docs, err := v.DocDB.FindByVehicle(r.Context(), userID, vehicleID)
	if err != nil {
		zap.S().Errorw("failed to list documents for cascade delete",
			"vehicleId", vehicleID, "error", err)
	}
	for _, doc := range docs {
		if err := v.DocDB.DeleteOne(r.Context(), userID, doc.ID); err != nil {
			zap.S().Errorw("failed to cascade delete document",
				"documentId", doc.ID, "error", err)
			continue
		}
		if doc.FilePath != "" && v.Blob != nil {
			if err := v.Blob.Delete(r.Context(), doc.FilePath); err != nil {
				zap.S().Errorw("failed to delete document blob",
					"path", doc.FilePath, "error", err)
			}
		}
	}

	b, err := json.Marshal(models.SuccessResponse{Success: true})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
