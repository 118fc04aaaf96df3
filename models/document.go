package models

import "time"

// Document holds the structure for a document record in the record store,
// stored under the key document_<userId>_<id>. A document may reference an
// uploaded blob via FilePath; metadata-only documents are valid too.
type Document struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"userId"`
	VehicleID   string    `json:"vehicleId" bson:"vehicleId"`
	Type        string    `json:"type" bson:"type"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ExpiryDate  string    `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	FilePath    string    `json:"filePath,omitempty" bson:"filePath,omitempty"`
	FileName    string    `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileType    string    `json:"fileType,omitempty" bson:"fileType,omitempty"`
	FileSize    int64     `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	FileURL     string    `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Document types accepted by the document service
const (
	DocumentTypeInsurance    = "insurance"
	DocumentTypeInspection   = "inspection"
	DocumentTypeTaxes        = "taxes"
	DocumentTypeRegistration = "registration"
	DocumentTypeOther        = "other"
)
