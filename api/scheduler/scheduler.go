package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/cardock/cardock-api/api"
	"github.com/cardock/cardock-api/config"
	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/models"
)

// Notifier pushes a notification to a connected user. Implemented by the
// websocket hub in the handlers package.
type Notifier interface {
	NotifyUser(userID string, notification interface{})
}

// ExpiryNotification is pushed over the websocket and summarized by email
// when a compliance item is expired or inside its warning window.
type ExpiryNotification struct {
	VehicleID   string                  `json:"vehicleId"`
	VehicleName string                  `json:"vehicleName"`
	ItemType    models.ComplianceType   `json:"itemType"`
	Date        string                  `json:"date"`
	Status      models.ComplianceStatus `json:"status"`
}

// Reminder handles the daily compliance expiry scan
type Reminder struct {
	cron     *cron.Cron
	VDB      databases.VehicleDatabase
	UDB      databases.UserDatabase
	notifier Notifier
	cfg      *config.Config
}

// NewReminder creates a new reminder scheduler instance
func NewReminder(vDB databases.VehicleDatabase, uDB databases.UserDatabase, n Notifier, cfg *config.Config) *Reminder {
	return &Reminder{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		VDB:      vDB,
		UDB:      uDB,
		notifier: n,
		cfg:      cfg,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Reminder) Start() {
	// Scan compliance dates daily at 6 AM UTC
	_, err := s.cron.AddFunc("0 6 * * *", s.processExpiries)
	if err != nil {
		zap.S().Errorw("failed to register expiry reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Expiry reminder scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Reminder) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Expiry reminder scheduler stopped")
}

// processExpiries scans every vehicle, derives compliance statuses and
// notifies owners of anything expired or expiring
func (s *Reminder) processExpiries() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	zap.S().Info("Running expiry reminder job")

	// the scan query gets the standard per-query deadline, the outer
	// context only bounds the whole job
	qctx, qcancel := api.WithQueryTimeout(ctx)
	vehicles, err := s.VDB.FindAll(qctx)
	qcancel()
	if err != nil {
		zap.S().Errorw("failed to scan vehicles", "error", err)
		return
	}

	now := time.Now().UTC()
	perUser := make(map[string][]ExpiryNotification)
	for i := range vehicles {
		v := &vehicles[i]
		for _, entry := range v.ComplianceItems() {
			if entry.Item.Date == "" {
				continue
			}
			status := models.DeriveStatusAt(entry.Item.Date, entry.Type, now)
			if status == models.StatusValid {
				continue
			}
			perUser[v.UserID] = append(perUser[v.UserID], ExpiryNotification{
				VehicleID:   v.ID,
				VehicleName: v.Name,
				ItemType:    entry.Type,
				Date:        entry.Item.Date,
				Status:      status,
			})
		}
	}

	for userID, notifications := range perUser {
		for _, n := range notifications {
			s.notifier.NotifyUser(userID, n)
		}
		s.sendSummaryEmail(ctx, userID, notifications)
	}

	zap.S().Infow("Expiry reminder job finished",
		"vehicles", len(vehicles), "usersNotified", len(perUser))
}

func (s *Reminder) sendSummaryEmail(ctx context.Context, userID string, notifications []ExpiryNotification) {
	if s.cfg.SendgridAPIKey == "" {
		zap.S().Debug("sendgrid api key not set, skipping reminder email")
		return
	}

	user, err := s.UDB.FindByID(ctx, userID)
	if err != nil {
		zap.S().Errorw("failed to resolve user for reminder email",
			"userId", userID, "error", err)
		return
	}

	var lines []string
	for _, n := range notifications {
		lines = append(lines, fmt.Sprintf("%s: %s %s (%s)",
			n.VehicleName, n.ItemType, n.Status, n.Date))
	}
	plainText := "The following items need your attention:\n" + strings.Join(lines, "\n")
	htmlContent := "<p>The following items need your attention:</p><ul><li>" +
		strings.Join(lines, "</li><li>") + "</li></ul>"

	if err := s.sendEmail(user.Details.Email, user.Details.Name,
		"Vehicle document expiry reminder", htmlContent, plainText); err != nil {
		zap.S().Errorw("failed to send reminder email", "userId", userID, "error", err)
	}
}

func (s *Reminder) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("CarDock", "no-reply@cardock.app")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(s.cfg.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
