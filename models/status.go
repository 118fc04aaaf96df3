package models

import "time"

// ComplianceStatus is the derived state of a compliance item relative to its
// expiry date
type ComplianceStatus string

// The three statuses a compliance item can be in
const (
	StatusValid   ComplianceStatus = "valid"
	StatusWarning ComplianceStatus = "warning"
	StatusExpired ComplianceStatus = "expired"
)

// ComplianceType enumerates the compliance items tracked per vehicle
type ComplianceType string

// Compliance item types
const (
	ComplianceInsurance  ComplianceType = "insurance"
	ComplianceInspection ComplianceType = "inspection"
	ComplianceTaxes      ComplianceType = "taxes"
)

// graceWindows holds the per-type warning windows. An item whose expiry date
// falls inside its window is "warning"
var graceWindows = map[ComplianceType]time.Duration{
	ComplianceInsurance:  7 * 24 * time.Hour,
	ComplianceInspection: 14 * 24 * time.Hour,
	ComplianceTaxes:      30 * 24 * time.Hour,
}

// DeriveStatus maps an ISO date string (YYYY-MM-DD) to a compliance status.
// A missing or unparseable date counts as expired, not valid.
func DeriveStatus(date string, itemType ComplianceType) ComplianceStatus {
	return DeriveStatusAt(date, itemType, time.Now().UTC())
}

// DeriveStatusAt is DeriveStatus with an injectable clock
func DeriveStatusAt(date string, itemType ComplianceType, now time.Time) ComplianceStatus {
	if date == "" {
		return StatusExpired
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		// some clients send full timestamps
		d, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return StatusExpired
		}
	}

	// the item stays usable through the end of its stated day
	endOfDay := d.Add(24*time.Hour - time.Second)
	if endOfDay.Before(now) {
		return StatusExpired
	}

	window, ok := graceWindows[itemType]
	if !ok {
		window = graceWindows[ComplianceTaxes]
	}
	if endOfDay.Before(now.Add(window)) {
		return StatusWarning
	}
	return StatusValid
}
