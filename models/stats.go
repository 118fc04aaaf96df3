package models

import "time"

// Stats holds the summary counters for a user's garage. Each vehicle
// contributes its three compliance items to the status tallies, so a single
// vehicle can add up to 3 to each counter's pool.
type Stats struct {
	TotalVehicles  int `json:"totalVehicles"`
	TotalDocuments int `json:"totalDocuments"`
	ExpiredItems   int `json:"expiredItems"`
	ExpiringItems  int `json:"expiringItems"`
	ValidItems     int `json:"validItems"`
}

// ComputeStats derives the summary counters from a user's vehicles. Statuses
// are re-derived from dates so counters never go stale between writes.
func ComputeStats(vehicles []Vehicle, totalDocuments int) Stats {
	return ComputeStatsAt(vehicles, totalDocuments, time.Now().UTC())
}

// ComputeStatsAt is ComputeStats with an injectable clock
func ComputeStatsAt(vehicles []Vehicle, totalDocuments int, now time.Time) Stats {
	stats := Stats{
		TotalVehicles:  len(vehicles),
		TotalDocuments: totalDocuments,
	}
	for i := range vehicles {
		for _, entry := range vehicles[i].ComplianceItems() {
			switch DeriveStatusAt(entry.Item.Date, entry.Type, now) {
			case StatusExpired:
				stats.ExpiredItems++
			case StatusWarning:
				stats.ExpiringItems++
			case StatusValid:
				stats.ValidItems++
			}
		}
	}
	return stats
}
