package models

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Status string `json:"status"`
}

// VehicleListResponse wraps the vehicle collection for a user
type VehicleListResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
}

// VehicleResponse wraps a single vehicle
type VehicleResponse struct {
	Vehicle Vehicle `json:"vehicle"`
}

// DocumentListResponse wraps the document collection for a vehicle
type DocumentListResponse struct {
	Documents []Document `json:"documents"`
}

// DocumentResponse wraps a single document
type DocumentResponse struct {
	Document Document `json:"document"`
}

// DocumentUploadResponse is returned after a successful file upload
type DocumentUploadResponse struct {
	Success  bool     `json:"success"`
	Document Document `json:"document"`
	Message  string   `json:"message"`
}

// SignedURLResponse wraps a presigned download link
type SignedURLResponse struct {
	URL string `json:"url"`
}

// HistoryResponse wraps the aggregated event feed
type HistoryResponse struct {
	History []HistoryItem `json:"history"`
}

// StatsResponse wraps the dashboard counters
type StatsResponse struct {
	Stats Stats `json:"stats"`
}

// ProfileResponse wraps the merged profile read model
type ProfileResponse struct {
	User MergedProfile `json:"user"`
}

// ProfileUpdateResponse is returned after an overlay write
type ProfileUpdateResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}

// SignupResponse wraps the freshly created auth user
type SignupResponse struct {
	User MergedProfile `json:"user"`
}

// SuccessResponse is the generic deletion acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}
