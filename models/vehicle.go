package models

import "time"

// ComplianceItem holds one compliance entry (insurance, inspection or taxes)
// embedded in a vehicle. Status is always derived from Date at write time and
// never trusted from client input.
type ComplianceItem struct {
	Date         string           `json:"date" bson:"date"`
	Status       ComplianceStatus `json:"status" bson:"status"`
	Company      string           `json:"company,omitempty" bson:"company,omitempty"`
	PolicyNumber string           `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	Center       string           `json:"center,omitempty" bson:"center,omitempty"`
	Amount       string           `json:"amount,omitempty" bson:"amount,omitempty"`
}

// Vehicle holds the structure for a vehicle record in the record store,
// stored under the key vehicle_<userId>_<id>
type Vehicle struct {
	ID         string         `json:"id" bson:"id"`
	UserID     string         `json:"userId" bson:"userId"`
	Name       string         `json:"name" bson:"name"`
	Plate      string         `json:"plate" bson:"plate"`
	Make       string         `json:"make" bson:"make"`
	Model      string         `json:"model" bson:"model"`
	Year       string         `json:"year" bson:"year"`
	Vin        string         `json:"vin,omitempty" bson:"vin,omitempty"`
	Color      string         `json:"color,omitempty" bson:"color,omitempty"`
	Type       string         `json:"type,omitempty" bson:"type,omitempty"`
	ImageURL   string         `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Insurance  ComplianceItem `json:"insurance" bson:"insurance"`
	Inspection ComplianceItem `json:"inspection" bson:"inspection"`
	Taxes      ComplianceItem `json:"taxes" bson:"taxes"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// RefreshStatuses recomputes the three compliance statuses from their dates
func (v *Vehicle) RefreshStatuses() {
	v.Insurance.Status = DeriveStatus(v.Insurance.Date, ComplianceInsurance)
	v.Inspection.Status = DeriveStatus(v.Inspection.Date, ComplianceInspection)
	v.Taxes.Status = DeriveStatus(v.Taxes.Date, ComplianceTaxes)
}

// ComplianceEntry pairs a compliance item with its type
type ComplianceEntry struct {
	Type ComplianceType
	Item ComplianceItem
}

// ComplianceItems returns the three items with their types, in a fixed order
func (v *Vehicle) ComplianceItems() []ComplianceEntry {
	return []ComplianceEntry{
		{ComplianceInsurance, v.Insurance},
		{ComplianceInspection, v.Inspection},
		{ComplianceTaxes, v.Taxes},
	}
}
