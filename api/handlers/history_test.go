package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cardock/cardock-api/api/handlers"
	dbmocks "github.com/cardock/cardock-api/databases/mocks"
	"github.com/cardock/cardock-api/models"
)

func TestHistory_HistoryHandler(t *testing.T) {
	t1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	vdb := &dbmocks.VehicleDatabase{}
	vdb.On("Find", mock.Anything, "u1").Return([]models.Vehicle{
		{ID: "v1", Name: "Civic", Plate: "AA-11-BB", CreatedAt: t1},
	}, nil)

	ddb := &dbmocks.DocumentDatabase{}
	ddb.On("Find", mock.Anything, "u1").Return([]models.Document{
		{ID: "d1", VehicleID: "v1", Name: "Policy", CreatedAt: t2},
	}, nil)

	h := handlers.History{VDB: vdb, DocDB: ddb}

	req := authedRequest(t, "GET", "/api/v1/history", "", "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HistoryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.HistoryResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.History, 2)
	assert.Equal(t, models.HistoryDocumentAdded, resp.History[0].Type)
	assert.Equal(t, "Civic", resp.History[0].VehicleName)
	assert.Equal(t, models.HistoryVehicleAdded, resp.History[1].Type)
}

func TestHistory_HistoryHandlerEmpty(t *testing.T) {
	vdb := &dbmocks.VehicleDatabase{}
	vdb.On("Find", mock.Anything, "u1").Return(nil, nil)
	ddb := &dbmocks.DocumentDatabase{}
	ddb.On("Find", mock.Anything, "u1").Return(nil, nil)

	h := handlers.History{VDB: vdb, DocDB: ddb}

	req := authedRequest(t, "GET", "/api/v1/history", "", "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HistoryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"history":[]}`, rr.Body.String())
}

func TestHistory_HistoryHandlerVehicleError(t *testing.T) {
	vdb := &dbmocks.VehicleDatabase{}
	vdb.On("Find", mock.Anything, "u1").Return(nil, errors.New("mocked-error"))

	h := handlers.History{VDB: vdb, DocDB: &dbmocks.DocumentDatabase{}}

	req := authedRequest(t, "GET", "/api/v1/history", "", "u1")
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HistoryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
