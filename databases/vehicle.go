package databases

//go generate: mockery --name VehicleDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardock/cardock-api/models"
)

// VehicleRecord is the record store envelope for a vehicle
type VehicleRecord struct {
	Key   string         `bson:"_id"`
	Value models.Vehicle `bson:"value"`
}

// VehicleDatabase contains the methods to use with the vehicle records
type VehicleDatabase interface {
	Find(ctx context.Context, userID string) ([]models.Vehicle, error)
	FindAll(ctx context.Context) ([]models.Vehicle, error)
	FindOne(ctx context.Context, userID, vehicleID string) (*models.Vehicle, error)
	Upsert(ctx context.Context, vehicle models.Vehicle) error
	DeleteOne(ctx context.Context, userID, vehicleID string) error
}

type vehicleDatabase struct {
	db DatabaseHelper
}

// NewVehicleDatabase initializes a new instance of vehicle database with the provided db connection
func NewVehicleDatabase(db DatabaseHelper) VehicleDatabase {
	return &vehicleDatabase{
		db: db,
	}
}

func (c *vehicleDatabase) Find(ctx context.Context, userID string) ([]models.Vehicle, error) {
	return c.find(ctx, prefixFilter(VehiclePrefix(userID)))
}

// FindAll scans every vehicle record regardless of owner; used by the expiry
// reminder job only.
func (c *vehicleDatabase) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	return c.find(ctx, prefixFilter("vehicle_"))
}

func (c *vehicleDatabase) find(ctx context.Context, filter interface{}) ([]models.Vehicle, error) {
	var records []VehicleRecord
	err := c.db.Collection(recordName).Find(ctx, filter).Decode(&records)
	if err != nil {
		return nil, err
	}
	vehicles := make([]models.Vehicle, 0, len(records))
	for _, r := range records {
		vehicles = append(vehicles, r.Value)
	}
	return vehicles, nil
}

func (c *vehicleDatabase) FindOne(ctx context.Context, userID, vehicleID string) (*models.Vehicle, error) {
	record := &VehicleRecord{}
	err := c.db.Collection(recordName).FindOne(ctx, bson.M{"_id": VehicleKey(userID, vehicleID)}).Decode(record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record.Value, nil
}

func (c *vehicleDatabase) Upsert(ctx context.Context, vehicle models.Vehicle) error {
	key := VehicleKey(vehicle.UserID, vehicle.ID)
	_, err := c.db.Collection(recordName).UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": vehicle}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (c *vehicleDatabase) DeleteOne(ctx context.Context, userID, vehicleID string) error {
	deleted, err := c.db.Collection(recordName).DeleteOne(ctx, bson.M{"_id": VehicleKey(userID, vehicleID)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
