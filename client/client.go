// Package client provides a typed Go client for the cardock API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/cardock/cardock-api/models"
)

const (
	// signInPropagationDelay gives the backend a beat to settle session
	// state before the first authenticated call
	signInPropagationDelay = 150 * time.Millisecond

	profileFetchAttempts = 3
	profileFetchBackoff  = 500 * time.Millisecond
)

// Client talks to a cardock API deployment. Safe for concurrent use once
// signed in.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token  string
	userID string
}

// New creates a client against the given base url
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SignUp registers a new account
func (c *Client) SignUp(ctx context.Context, email, password, name string) (models.MergedProfile, error) {
	var resp models.SignupResponse
	err := c.do(ctx, http.MethodPost, "/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, &resp)
	return resp.User, err
}

// SignIn exchanges credentials for a bearer token and pauses briefly so
// follow-up reads land after the session has propagated
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/auth/token", nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(email, password)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("sign in failed: status %d", res.StatusCode)
	}

	var body struct {
		Token  string `json:"token"`
		UserID string `json:"_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}
	c.token = body.Token
	c.userID = body.UserID

	select {
	case <-time.After(signInPropagationDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// UserID returns the signed-in user's id, or "" before SignIn
func (c *Client) UserID() string {
	return c.userID
}

// Profile fetches the merged profile, retrying while the freshly created
// session settles
func (c *Client) Profile(ctx context.Context) (models.MergedProfile, error) {
	var resp models.ProfileResponse
	var err error
	for attempt := 0; attempt < profileFetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(profileFetchBackoff):
			case <-ctx.Done():
				return models.MergedProfile{}, ctx.Err()
			}
		}
		err = c.do(ctx, http.MethodGet, "/api/v1/profile", nil, &resp)
		if err == nil {
			return resp.User, nil
		}
	}
	return models.MergedProfile{}, err
}

// UpdateProfile writes the profile overlay
func (c *Client) UpdateProfile(ctx context.Context, overlay models.Profile) (models.Profile, error) {
	var resp models.ProfileUpdateResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/profile", overlay, &resp)
	return resp.Profile, err
}

// Vehicles lists the signed-in user's vehicles
func (c *Client) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var resp models.VehicleListResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/vehicles", nil, &resp)
	return resp.Vehicles, err
}

// CreateVehicle adds a vehicle
func (c *Client) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	var resp models.VehicleResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/vehicles", vehicle, &resp)
	return resp.Vehicle, err
}

// UpdateVehicle updates a vehicle's details
func (c *Client) UpdateVehicle(ctx context.Context, vehicleID string, vehicle models.Vehicle) (models.Vehicle, error) {
	var resp models.VehicleResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/vehicles/"+vehicleID, vehicle, &resp)
	return resp.Vehicle, err
}

// DeleteVehicle removes a vehicle and its documents
func (c *Client) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/vehicles/"+vehicleID, nil, nil)
}

// Documents lists a vehicle's documents
func (c *Client) Documents(ctx context.Context, vehicleID string) ([]models.Document, error) {
	var resp models.DocumentListResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/vehicles/"+vehicleID+"/documents", nil, &resp)
	return resp.Documents, err
}

// AddDocument creates a metadata-only document
func (c *Client) AddDocument(ctx context.Context, vehicleID string, doc models.Document) (models.Document, error) {
	var resp models.DocumentResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/vehicles/"+vehicleID+"/documents", doc, &resp)
	return resp.Document, err
}

// UploadDocument uploads a file plus its metadata in one multipart request
func (c *Client) UploadDocument(ctx context.Context, vehicleID, fileName string, file io.Reader, doc models.Document) (models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return models.Document{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.Document{}, err
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return models.Document{}, err
	}
	if err := mw.WriteField("documentData", string(docJSON)); err != nil {
		return models.Document{}, err
	}
	if err := mw.Close(); err != nil {
		return models.Document{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/v1/vehicles/"+vehicleID+"/documents/upload", &buf)
	if err != nil {
		return models.Document{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.Document{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return models.Document{}, fmt.Errorf("upload failed: status %d", res.StatusCode)
	}

	var resp models.DocumentUploadResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return models.Document{}, err
	}
	return resp.Document, nil
}

// DeleteDocument removes a document
func (c *Client) DeleteDocument(ctx context.Context, vehicleID, documentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/vehicles/"+vehicleID+"/documents/"+documentID, nil, nil)
}

// DocumentURL fetches a short-lived download link
func (c *Client) DocumentURL(ctx context.Context, documentID string) (string, error) {
	var resp models.SignedURLResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/documents/"+documentID+"/url", nil, &resp)
	return resp.URL, err
}

// History fetches the aggregated event feed
func (c *Client) History(ctx context.Context) ([]models.HistoryItem, error) {
	var resp models.HistoryResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/history", nil, &resp)
	return resp.History, err
}

// Stats fetches the dashboard counters
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var resp models.StatsResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/stats", nil, &resp)
	return resp.Stats, err
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("%s %s: status %d", method, path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
