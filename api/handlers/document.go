package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
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

const (
	// maxUploadSize caps multipart parsing memory, larger files spill to disk
	maxUploadSize = 32 << 20

	downloadURLExpiry = time.Hour
	embedURLExpiry    = 7 * 24 * time.Hour
)

// Document exported for testing purposes
type Document struct {
	DB   databases.DocumentDatabase
	VDB  databases.VehicleDatabase
	Blob storage.BlobStore
}

// DocumentsByVehicleHandler returns all documents attached to a vehicle
func (d Document) DocumentsByVehicleHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	vehicleID := mux.Vars(r)["vehicle_id"]

	dbResp, err := d.DB.FindByVehicle(r.Context(), userID, vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get documents", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Document{}
	}
	b, err := json.Marshal(models.DocumentListResponse{Documents: dbResp})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateDocumentHandler creates a metadata-only document
func (d Document) CreateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	vehicleID := mux.Vars(r)["vehicle_id"]

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	now := time.Now().UTC()
	doc.ID = uuid.New().String()
	doc.UserID = userID
	doc.VehicleID = vehicleID
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := d.DB.Upsert(r.Context(), doc); err != nil {
		config.ErrorStatus("failed to create document", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.DocumentResponse{Document: doc})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UploadDocumentHandler accepts a multipart upload with a "file" part and a
// "documentData" JSON part. The blob is written first, the metadata record
// only after the blob write succeeds.
func (d Document) UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	vehicleID := mux.Vars(r)["vehicle_id"]

	if _, err := d.VDB.FindOne(r.Context(), userID, vehicleID); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("vehicle not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get vehicle", http.StatusInternalServerError, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("missing file part", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	documentData := r.FormValue("documentData")
	if documentData == "" {
		config.ErrorStatus("missing documentData part", http.StatusBadRequest, w,
			errors.New("documentData form value is empty"))
		return
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(documentData), &doc); err != nil {
		config.ErrorStatus("failed to decode documentData", http.StatusBadRequest, w, err)
		return
	}

	now := time.Now().UTC()
	doc.ID = uuid.New().String()
	doc.UserID = userID
	doc.VehicleID = vehicleID
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.FileName = header.Filename
	doc.FileType = header.Header.Get("Content-Type")
	doc.FileSize = header.Size
	doc.FilePath = userID + "/" + vehicleID + "/" + uuid.New().String() + filepath.Ext(header.Filename)

	err = d.Blob.Upload(r.Context(), doc.FilePath, file, header.Size, doc.FileType)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			config.ErrorStatus("file already exists", http.StatusConflict, w, err)
			return
		}
		config.ErrorStatus("failed to upload file", http.StatusInternalServerError, w, err)
		return
	}

	embedURL, err := d.Blob.SignedURL(r.Context(), doc.FilePath, embedURLExpiry)
	if err != nil {
		zap.S().Errorw("failed to presign embed url", "path", doc.FilePath, "error", err)
	} else {
		doc.FileURL = embedURL
	}

	if err := d.DB.Upsert(r.Context(), doc); err != nil {
		config.ErrorStatus("failed to create document", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugw("document uploaded",
		"documentId", doc.ID, "vehicleId", vehicleID, "size", header.Size)

	b, err := json.Marshal(models.DocumentUploadResponse{
		Success:  true,
		Document: doc,
		Message:  "Document uploaded successfully",
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DocumentURLHandler returns a short-lived presigned download link
func (d Document) DocumentURLHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	documentID := mux.Vars(r)["document_id"]

	doc, err := d.DB.FindOne(r.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("document not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get document", http.StatusInternalServerError, w, err)
		return
	}
	if doc.FilePath == "" {
		config.ErrorStatus("document has no file", http.StatusNotFound, w,
			errors.New("document has no file path"))
		return
	}

	url, err := d.Blob.SignedURL(r.Context(), doc.FilePath, downloadURLExpiry)
	if err != nil {
		config.ErrorStatus("failed to presign url", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.SignedURLResponse{URL: url})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteDocumentHandler deletes a document record, then its blob best-effort
func (d Document) DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())
	documentID := mux.Vars(r)["document_id"]

	doc, err := d.DB.FindOne(r.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("document not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get document", http.StatusInternalServerError, w, err)
		return
	}

	if err := d.DB.DeleteOne(r.Context(), userID, documentID); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("document not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete document", http.StatusInternalServerError, w, err)
		return
	}

	if doc.FilePath != "" {
		if err := d.Blob.Delete(r.Context(), doc.FilePath); err != nil {
			zap.S().Errorw("failed to delete document blob",
				"path", doc.FilePath, "error", err)
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
