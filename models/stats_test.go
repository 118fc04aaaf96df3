package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardock/cardock-api/models"
)

func TestComputeStatsAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	vehicles := []models.Vehicle{
		{
			Insurance:  models.ComplianceItem{Date: "2020-01-01"},
			Inspection: models.ComplianceItem{Date: "2030-01-01"},
			Taxes:      models.ComplianceItem{Date: "2030-01-01"},
		},
		{
			Insurance:  models.ComplianceItem{Date: "2030-01-01"},
			Inspection: models.ComplianceItem{Date: "2030-01-01"},
			Taxes:      models.ComplianceItem{Date: ""},
		},
	}

	stats := models.ComputeStatsAt(vehicles, 5, now)

	assert.Equal(t, 2, stats.TotalVehicles)
	assert.Equal(t, 5, stats.TotalDocuments)
	assert.Equal(t, 2, stats.ExpiredItems)
	assert.Equal(t, 0, stats.ExpiringItems)
	assert.Equal(t, 4, stats.ValidItems)
}

func TestComputeStatsAt_CountsWarnings(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	vehicles := []models.Vehicle{
		{
			// inside the 7 day insurance window
			Insurance:  models.ComplianceItem{Date: "2026-03-18"},
			Inspection: models.ComplianceItem{Date: "2030-01-01"},
			Taxes:      models.ComplianceItem{Date: "2030-01-01"},
		},
	}

	stats := models.ComputeStatsAt(vehicles, 0, now)

	assert.Equal(t, 1, stats.ExpiringItems)
	assert.Equal(t, 2, stats.ValidItems)
	assert.Equal(t, 0, stats.ExpiredItems)
}

func TestComputeStatsAt_IgnoresStoredStatuses(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	// stored statuses are stale on purpose, counters must re-derive
	vehicles := []models.Vehicle{
		{
			Insurance:  models.ComplianceItem{Date: "2020-01-01", Status: models.StatusValid},
			Inspection: models.ComplianceItem{Date: "2030-01-01", Status: models.StatusExpired},
			Taxes:      models.ComplianceItem{Date: "2030-01-01", Status: models.StatusExpired},
		},
	}

	stats := models.ComputeStatsAt(vehicles, 0, now)

	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 2, stats.ValidItems)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := models.ComputeStats(nil, 0)
	assert.Equal(t, models.Stats{}, stats)
}
