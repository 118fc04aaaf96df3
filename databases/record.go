package databases

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordName is the single collection backing the record store. Every entry is
// an envelope {_id: <key>, value: <record>} so lookups and prefix scans run
// against the key alone.
const recordName = "records"

// ErrNotFound is returned when no record exists under the scoped key
var ErrNotFound = errors.New("record not found")

// Record store key layout. Every key embeds the owning user's id so ownership
// is enforced by key scoping, never by a relational check.
func VehicleKey(userID, vehicleID string) string {
	return "vehicle_" + userID + "_" + vehicleID
}

// VehiclePrefix scopes a scan to one user's vehicles
func VehiclePrefix(userID string) string {
	return "vehicle_" + userID + "_"
}

// DocumentKey addresses one document directly by id, so signed-URL lookups
// need no scan. The vehicle id lives in the record value.
func DocumentKey(userID, documentID string) string {
	return "document_" + userID + "_" + documentID
}

// DocumentPrefix scopes a scan to one user's documents
func DocumentPrefix(userID string) string {
	return "document_" + userID + "_"
}

// ProfileKey addresses the per-user profile overlay
func ProfileKey(userID string) string {
	return "user_profile_" + userID
}

// prefixFilter builds an anchored-regex filter over the record keys
func prefixFilter(prefix string) bson.M {
	return bson.M{"_id": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
}
