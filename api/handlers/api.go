package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/api/scheduler"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
	"github.com/cardock/cardock-api/storage"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	blob     storage.BlobStore
	reminder *scheduler.Reminder
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper), Cfg: &a.Config}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{DB: databases.NewUserDatabase(a.dbHelper), Profiles: databases.NewProfileRepository(a.dbHelper)}
	v := Vehicle{DB: databases.NewVehicleDatabase(a.dbHelper), DocDB: databases.NewDocumentDatabase(a.dbHelper), Blob: a.blob}
	d := Document{DB: databases.NewDocumentDatabase(a.dbHelper), VDB: databases.NewVehicleDatabase(a.dbHelper), Blob: a.blob}
	h := History{VDB: databases.NewVehicleDatabase(a.dbHelper), DocDB: databases.NewDocumentDatabase(a.dbHelper)}
	s := Stats{VDB: databases.NewVehicleDatabase(a.dbHelper), DocDB: databases.NewDocumentDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.Handle("/signup", http.HandlerFunc(u.SignupHandler)).Methods("POST")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")

	apiCreate.Handle("/profile", api.Middleware(http.HandlerFunc(u.ProfileHandler))).Methods("GET")
	apiCreate.Handle("/profile", api.Middleware(http.HandlerFunc(u.UpdateProfileHandler))).Methods("PUT")

	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.VehiclesHandler))).Methods("GET")
	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicles/{vehicle_id}", api.Middleware(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PUT")
	apiCreate.Handle("/vehicles/{vehicle_id}", api.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")

	apiCreate.Handle("/vehicles/{vehicle_id}/documents", api.Middleware(http.HandlerFunc(d.DocumentsByVehicleHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/{vehicle_id}/documents", api.Middleware(http.HandlerFunc(d.CreateDocumentHandler))).Methods("POST")
	apiCreate.Handle("/vehicles/{vehicle_id}/documents/upload", api.Middleware(http.HandlerFunc(d.UploadDocumentHandler))).Methods("POST")
	apiCreate.Handle("/vehicles/{vehicle_id}/documents/{document_id}", api.Middleware(http.HandlerFunc(d.DeleteDocumentHandler))).Methods("DELETE")
	apiCreate.Handle("/documents/{document_id}/url", api.Middleware(http.HandlerFunc(d.DocumentURLHandler))).Methods("GET")

	apiCreate.Handle("/history", api.Middleware(http.HandlerFunc(h.HistoryHandler))).Methods("GET")
	apiCreate.Handle("/stats", api.Middleware(http.HandlerFunc(s.StatsHandler))).Methods("GET")

	apiCreate.Handle("/notifications/ws", api.Middleware(http.HandlerFunc(HandleNotificationsWebSocket))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("cardock-api has connected to the database")

	a.blob, err = storage.NewMinioStore(context.Background(), &a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to connect to blob storage")
		return err
	}

	a.reminder = scheduler.NewReminder(
		databases.NewVehicleDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
		hub,
		&a.Config,
	)
	a.reminder.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Status: "ok",
	})
	_, _ = io.WriteString(w, string(b))
}
