package databases

//go generate: mockery --name DocumentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardock/cardock-api/models"
)

// DocumentRecord is the record store envelope for a document
type DocumentRecord struct {
	Key   string          `bson:"_id"`
	Value models.Document `bson:"value"`
}

// DocumentDatabase contains the methods to use with the document records
type DocumentDatabase interface {
	Find(ctx context.Context, userID string) ([]models.Document, error)
	FindByVehicle(ctx context.Context, userID, vehicleID string) ([]models.Document, error)
	FindOne(ctx context.Context, userID, documentID string) (*models.Document, error)
	Upsert(ctx context.Context, document models.Document) error
	DeleteOne(ctx context.Context, userID, documentID string) error
	Count(ctx context.Context, userID string) (int64, error)
}

type documentDatabase struct {
	db DatabaseHelper
}

// NewDocumentDatabase initializes a new instance of document database with the provided db connection
func NewDocumentDatabase(db DatabaseHelper) DocumentDatabase {
	return &documentDatabase{
		db: db,
	}
}

func (c *documentDatabase) Find(ctx context.Context, userID string) ([]models.Document, error) {
	return c.find(ctx, prefixFilter(DocumentPrefix(userID)))
}

func (c *documentDatabase) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]models.Document, error) {
	filter := prefixFilter(DocumentPrefix(userID))
	filter["value.vehicleId"] = vehicleID
	return c.find(ctx, filter)
}

func (c *documentDatabase) find(ctx context.Context, filter interface{}) ([]models.Document, error) {
	var records []DocumentRecord
	err := c.db.Collection(recordName).Find(ctx, filter).Decode(&records)
	if err != nil {
		return nil, err
	}
	documents := make([]models.Document, 0, len(records))
	for _, r := range records {
		documents = append(documents, r.Value)
	}
	return documents, nil
}

func (c *documentDatabase) FindOne(ctx context.Context, userID, documentID string) (*models.Document, error) {
	record := &DocumentRecord{}
	err := c.db.Collection(recordName).FindOne(ctx, bson.M{"_id": DocumentKey(userID, documentID)}).Decode(record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record.Value, nil
}

func (c *documentDatabase) Upsert(ctx context.Context, document models.Document) error {
	key := DocumentKey(document.UserID, document.ID)
	_, err := c.db.Collection(recordName).UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": document}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (c *documentDatabase) DeleteOne(ctx context.Context, userID, documentID string) error {
	deleted, err := c.db.Collection(recordName).DeleteOne(ctx, bson.M{"_id": DocumentKey(userID, documentID)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *documentDatabase) Count(ctx context.Context, userID string) (int64, error) {
	return c.db.Collection(recordName).CountDocuments(ctx, prefixFilter(DocumentPrefix(userID)))
}
