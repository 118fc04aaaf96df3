package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardock/cardock-api/api/handlers"
	"github.com/cardock/cardock-api/databases"
	dbmocks "github.com/cardock/cardock-api/databases/mocks"
	"github.com/cardock/cardock-api/models"
)

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestUser_SignupHandler(t *testing.T) {
	udb := &dbmocks.UserDatabase{}
	udb.On("FindByEmail", mock.Anything, "jo@example.com").Return(nil, databases.ErrNotFound)

	var stored models.User
	udb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.User")).
		Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(models.User)
	})

	u := handlers.User{DB: udb}

	body := `{"email":"Jo@Example.com","password":"hunter22","name":"Jo"}`
	req, _ := http.NewRequest("POST", "/signup", jsonBody(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	// email is normalized and the password is stored hashed
	assert.Equal(t, "jo@example.com", stored.Details.Email)
	assert.NotEqual(t, "hunter22", stored.Details.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Details.Password), []byte("hunter22")))

	var resp models.SignupResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, stored.ID, resp.User.ID)
	assert.Equal(t, "jo@example.com", resp.User.Email)
}

func TestUser_SignupHandlerDuplicateEmail(t *testing.T) {
	udb := &dbmocks.UserDatabase{}
	udb.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(&models.User{ID: "u1"}, nil)

	u := handlers.User{DB: udb}

	body := `{"email":"jo@example.com","password":"hunter22"}`
	req, _ := http.NewRequest("POST", "/signup", jsonBody(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	udb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestUser_SignupHandlerMissingFields(t *testing.T) {
	u := handlers.User{DB: &dbmocks.UserDatabase{}}

	body := `{"email":"","password":""}`
	req, _ := http.NewRequest("POST", "/signup", jsonBody(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUser_ProfileHandler(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}
	profiles.On("Fetch", mock.Anything, "u1").Return(models.MergedProfile{
		ID:    "u1",
		Email: "jo@example.com",
		Name:  "Joanna",
		Phone: "555-0100",
	}, nil)

	u := handlers.User{Profiles: profiles}

	req := authedRequest(t, "GET", "/api/v1/profile", "", "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.ProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.ProfileResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Joanna", resp.User.Name)
	assert.Equal(t, "555-0100", resp.User.Phone)
}

func TestUser_ProfileHandlerNotFound(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}
	profiles.On("Fetch", mock.Anything, "ghost").
		Return(models.MergedProfile{}, databases.ErrNotFound)

	u := handlers.User{Profiles: profiles}

	req := authedRequest(t, "GET", "/api/v1/profile", "", "ghost")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.ProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUser_UpdateProfileHandler(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}

	var stored models.Profile
	profiles.On("UpdateOverlay", mock.Anything, mock.AnythingOfType("models.Profile")).
		Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(models.Profile)
	})

	udb := &dbmocks.UserDatabase{}
	udb.On("FindByID", mock.Anything, "u1").Return(&models.User{
		ID:      "u1",
		Details: models.UserDetails{Email: "jo@example.com", Name: "Jo"},
	}, nil)

	var synced models.UserDetails
	udb.On("UpdateDetails", mock.Anything, "u1", mock.AnythingOfType("models.UserDetails")).
		Return(nil).Run(func(args mock.Arguments) {
		synced = args.Get(2).(models.UserDetails)
	})

	u := handlers.User{DB: udb, Profiles: profiles}

	body := `{"name":"Joanna","phone":"555-0100","userId":"spoofed"}`
	req := authedRequest(t, "PUT", "/api/v1/profile", body, "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// the overlay is always keyed by the token's user, not the payload
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "Joanna", stored.Name)
	assert.False(t, stored.UpdatedAt.IsZero())

	// the rename is carried into the identity record as well
	assert.Equal(t, "Joanna", synced.Name)
	assert.Equal(t, "jo@example.com", synced.Email)

	var resp models.ProfileUpdateResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestUser_UpdateProfileHandlerNoNameSkipsIdentitySync(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}
	profiles.On("UpdateOverlay", mock.Anything, mock.Anything).Return(nil)

	udb := &dbmocks.UserDatabase{}

	u := handlers.User{DB: udb, Profiles: profiles}

	req := authedRequest(t, "PUT", "/api/v1/profile", `{"phone":"555-0100"}`, "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	udb.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	udb.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_UpdateProfileHandlerIdentitySyncFailureStillSucceeds(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}
	profiles.On("UpdateOverlay", mock.Anything, mock.Anything).Return(nil)

	udb := &dbmocks.UserDatabase{}
	udb.On("FindByID", mock.Anything, "u1").Return(nil, errors.New("mocked-error"))

	u := handlers.User{DB: udb, Profiles: profiles}

	req := authedRequest(t, "PUT", "/api/v1/profile", `{"name":"Joanna"}`, "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateProfileHandler).ServeHTTP(rr, req)

	// the overlay write already succeeded, the sync is best effort
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUser_UpdateProfileHandlerWriteError(t *testing.T) {
	profiles := &dbmocks.ProfileRepository{}
	profiles.On("UpdateOverlay", mock.Anything, mock.Anything).
		Return(errors.New("mocked-error"))

	u := handlers.User{Profiles: profiles}

	req := authedRequest(t, "PUT", "/api/v1/profile", `{"name":"x"}`, "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
