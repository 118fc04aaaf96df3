package models

import (
	"sort"
	"time"
)

// History event types
const (
	HistoryVehicleAdded  = "vehicle_added"
	HistoryDocumentAdded = "document_added"
)

// HistoryItem is one entry in the activity feed. The feed mixes creation
// events and compliance-deadline events, so Date is the event's sort key, not
// necessarily when the record was written.
type HistoryItem struct {
	Type        string           `json:"type"`
	Date        time.Time        `json:"date"`
	VehicleID   string           `json:"vehicleId,omitempty"`
	VehicleName string           `json:"vehicleName,omitempty"`
	Plate       string           `json:"plate,omitempty"`
	DocumentID  string           `json:"documentId,omitempty"`
	Title       string           `json:"title"`
	Status      ComplianceStatus `json:"status,omitempty"`
	Item        *ComplianceItem  `json:"item,omitempty"`
}

// missingVehiclePlaceholder annotates document events whose parent vehicle no
// longer exists
const missingVehiclePlaceholder = "Unknown vehicle"

// BuildHistory derives the unified activity feed from a user's vehicles and
// documents, most recent first, stable on ties.
func BuildHistory(vehicles []Vehicle, documents []Document) []HistoryItem {
	byID := make(map[string]*Vehicle, len(vehicles))
	items := make([]HistoryItem, 0, len(vehicles)*4+len(documents))

	for i := range vehicles {
		v := &vehicles[i]
		byID[v.ID] = v

		items = append(items, HistoryItem{
			Type:        HistoryVehicleAdded,
			Date:        v.CreatedAt,
			VehicleID:   v.ID,
			VehicleName: v.Name,
			Plate:       v.Plate,
			Title:       v.Name,
		})

		for _, entry := range v.ComplianceItems() {
			if entry.Item.Date == "" {
				continue
			}
			item := entry.Item
			items = append(items, HistoryItem{
				Type:        string(entry.Type),
				Date:        parseEventDate(item.Date),
				VehicleID:   v.ID,
				VehicleName: v.Name,
				Plate:       v.Plate,
				Title:       v.Name,
				Status:      item.Status,
				Item:        &item,
			})
		}
	}

	for _, d := range documents {
		item := HistoryItem{
			Type:        HistoryDocumentAdded,
			Date:        d.CreatedAt,
			VehicleID:   d.VehicleID,
			DocumentID:  d.ID,
			Title:       d.Name,
			VehicleName: missingVehiclePlaceholder,
		}
		if v, ok := byID[d.VehicleID]; ok {
			item.VehicleName = v.Name
			item.Plate = v.Plate
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}

func parseEventDate(date string) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		d, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return time.Time{}
		}
	}
	return d
}
