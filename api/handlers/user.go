package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
)

// User exported for testing purposes
type User struct {
	DB       databases.UserDatabase
	Profiles databases.ProfileRepository
}

// SignupRequest is the payload for POST /signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignupHandler creates an auth user
func (u User) SignupHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		config.ErrorStatus("email and password are required", http.StatusBadRequest, w,
			errors.New("missing email or password"))
		return
	}

	if _, err := u.DB.FindByEmail(r.Context(), req.Email); err == nil {
		config.ErrorStatus("email already registered", http.StatusBadRequest, w,
			errors.New("duplicate email"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID: uuid.New().String(),
		Details: models.UserDetails{
			Email:     req.Email,
			Password:  string(hash),
			Name:      req.Name,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := u.DB.InsertOne(r.Context(), user); err != nil {
		config.ErrorStatus("failed to create user", http.StatusBadRequest, w, err)
		return
	}

	zap.S().Infow("user signed up", "userId", user.ID)

	b, err := json.Marshal(models.SignupResponse{User: models.Merge(&user, nil)})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ProfileHandler returns the merged profile for the authenticated user
func (u User) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	profile, err := u.Profiles.Fetch(r.Context(), userID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("user not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get profile", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.ProfileResponse{User: profile})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (u User) syncIdentityName(r *http.Request, userID, name string) {
	user, err := u.DB.FindByID(r.Context(), userID)
	if err != nil {
		zap.S().Warnw("failed to load identity record for name sync",
			"userId", userID, "error", err)
		return
	}
	if user.Details.Name == name {
		return
	}

	details := user.Details
	details.Name = name
	details.UpdatedAt = time.Now().UTC()
	if err := u.DB.UpdateDetails(r.Context(), userID, details); err != nil {
		zap.S().Warnw("failed to sync name into identity record",
			"userId", userID, "error", err)
	}
}

// UpdateProfileHandler writes the profile overlay for the authenticated user
func (u User) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r.Context())

	var overlay models.Profile
	if err := json.NewDecoder(r.Body).Decode(&overlay); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	overlay.UserID = userID
	overlay.UpdatedAt = time.Now().UTC()

	if err := u.Profiles.UpdateOverlay(r.Context(), overlay); err != nil {
		config.ErrorStatus("failed to update profile", http.StatusInternalServerError, w, err)
		return
	}

	// keep the identity record's display name in step with the overlay so
	// emails and token claims pick up renames. Best effort, the overlay
	// already won the merge.
	if overlay.Name != "" {
		u.syncIdentityName(r, userID, overlay.Name)
	}

	b, err := json.Marshal(models.ProfileUpdateResponse{Success: true, Profile: overlay})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
