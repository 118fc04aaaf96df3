package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardock/cardock-api/models"
)

func TestBuildHistory_SortedDescending(t *testing.T) {
	t1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	vehicles := []models.Vehicle{
		{ID: "v1", Name: "Civic", Plate: "AA-11-BB", CreatedAt: t1},
	}
	documents := []models.Document{
		{ID: "d1", VehicleID: "v1", Name: "Insurance policy", CreatedAt: t3},
		{ID: "d2", VehicleID: "v1", Name: "Inspection cert", CreatedAt: t2},
	}

	history := models.BuildHistory(vehicles, documents)

	assert.Len(t, history, 3)
	assert.Equal(t, "d1", history[0].DocumentID)
	assert.Equal(t, "d2", history[1].DocumentID)
	assert.Equal(t, models.HistoryVehicleAdded, history[2].Type)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].Date.Before(history[i].Date),
			"history must be sorted by date descending")
	}
}

func TestBuildHistory_ComplianceEventsCarryStatus(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	v := models.Vehicle{
		ID:        "v1",
		Name:      "Civic",
		Plate:     "AA-11-BB",
		CreatedAt: created,
		Insurance: models.ComplianceItem{Date: "2026-06-01", Status: models.StatusValid},
	}

	history := models.BuildHistory([]models.Vehicle{v}, nil)

	assert.Len(t, history, 2)
	assert.Equal(t, string(models.ComplianceInsurance), history[0].Type)
	assert.Equal(t, models.StatusValid, history[0].Status)
	assert.NotNil(t, history[0].Item)
	assert.Equal(t, "2026-06-01", history[0].Item.Date)
	// items with empty dates emit no event
	assert.Equal(t, models.HistoryVehicleAdded, history[1].Type)
}

func TestBuildHistory_DocumentAnnotatedWithParentVehicle(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{ID: "v1", Name: "Civic", Plate: "AA-11-BB", CreatedAt: created},
	}
	documents := []models.Document{
		{ID: "d1", VehicleID: "v1", Name: "Policy", CreatedAt: created.Add(time.Hour)},
	}

	history := models.BuildHistory(vehicles, documents)

	assert.Equal(t, "Civic", history[0].VehicleName)
	assert.Equal(t, "AA-11-BB", history[0].Plate)
}

func TestBuildHistory_MissingVehiclePlaceholder(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", VehicleID: "gone", Name: "Orphan", CreatedAt: time.Now()},
	}

	history := models.BuildHistory(nil, documents)

	assert.Len(t, history, 1)
	assert.Equal(t, "Unknown vehicle", history[0].VehicleName)
	assert.Empty(t, history[0].Plate)
}

func TestBuildHistory_StableOnTies(t *testing.T) {
	ts := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	documents := []models.Document{
		{ID: "d1", VehicleID: "v1", Name: "First", CreatedAt: ts},
		{ID: "d2", VehicleID: "v1", Name: "Second", CreatedAt: ts},
	}

	history := models.BuildHistory(nil, documents)

	assert.Equal(t, "d1", history[0].DocumentID)
	assert.Equal(t, "d2", history[1].DocumentID)
}
