package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cardock/cardock-api/databases"
	"github.com/cardock/cardock-api/databases/mocks"
	"github.com/cardock/cardock-api/models"
)

func TestDocumentDatabase_FindByVehicleScopesFilter(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var curHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	curHelper = &mocks.CursorHelper{}

	curHelper.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]databases.DocumentRecord)
		*arg = []databases.DocumentRecord{
			{Key: "document_u1_d1", Value: models.Document{ID: "d1", VehicleID: "v1"}},
		}
	})

	var captured bson.M
	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), mock.Anything).
		Return(curHelper).Run(func(args mock.Arguments) {
		captured = args.Get(1).(bson.M)
	})

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "records").Return(collectionHelper)

	documentDba := databases.NewDocumentDatabase(dbHelper)

	documents, err := documentDba.FindByVehicle(context.Background(), "u1", "v1")

	assert.NoError(t, err)
	assert.Len(t, documents, 1)

	// the scan is keyed to the owner's prefix and narrowed by vehicle id
	assert.Equal(t, "v1", captured["value.vehicleId"])
	re, ok := captured["_id"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "^document_u1_", re.Pattern)
}

func TestDocumentDatabase_FindOne(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperNotFound databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperNotFound = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperNotFound.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*databases.DocumentRecord)
		arg.Key = "document_u1_d1"
		arg.Value = models.Document{ID: "d1", UserID: "u1", Name: "Policy"}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "document_u1_missing"}).
		Return(srHelperNotFound)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "document_u1_d1"}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "records").Return(collectionHelper)

	documentDba := databases.NewDocumentDatabase(dbHelper)

	document, err := documentDba.FindOne(context.Background(), "u1", "missing")

	assert.Empty(t, document)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	document, err = documentDba.FindOne(context.Background(), "u1", "d1")

	assert.NoError(t, err)
	assert.Equal(t, "Policy", document.Name)
}

func TestDocumentDatabase_Count(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), mock.Anything).
		Return(int64(4), nil).Once()

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), mock.Anything).
		Return(int64(0), errors.New("mocked-error")).Once()

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "records").Return(collectionHelper)

	documentDba := databases.NewDocumentDatabase(dbHelper)

	count, err := documentDba.Count(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	_, err = documentDba.Count(context.Background(), "u1")
	assert.EqualError(t, err, "mocked-error")
}
