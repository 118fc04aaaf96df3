package models

import "time"

// User holds the structure for the auth users collection
type User struct {
	ID      string      `json:"_id" bson:"_id"`
	Details UserDetails `json:"user" bson:"user"`
}

// UserDetails holds the inner identity fields as defined in the auth users
// collection. Password carries the bcrypt hash.
type UserDetails struct {
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Profile is the per-user overlay stored in the record store under
// user_profile_<userId>. Overlay fields take precedence over the identity
// record when the two are merged.
type Profile struct {
	UserID           string    `json:"userId" bson:"userId"`
	Name             string    `json:"name,omitempty" bson:"name,omitempty"`
	Avatar           string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Address          string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone            string    `json:"phone,omitempty" bson:"phone,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	LicenseNumber    string    `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	LicenseExpiry    string    `json:"licenseExpiry,omitempty" bson:"licenseExpiry,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MergedProfile is the read model returned by GET /profile: identity fields
// from the auth record overlaid with the record store profile.
type MergedProfile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Avatar           string `json:"avatar,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	LicenseExpiry    string `json:"licenseExpiry,omitempty"`
}

// Merge applies the overlay on top of the identity record, overlay wins
func Merge(user *User, overlay *Profile) MergedProfile {
	merged := MergedProfile{}
	if user != nil {
		merged.ID = user.ID
		merged.Email = user.Details.Email
		merged.Name = user.Details.Name
	}
	if overlay != nil {
		if overlay.Name != "" {
			merged.Name = overlay.Name
		}
		merged.Avatar = overlay.Avatar
		merged.Address = overlay.Address
		merged.Phone = overlay.Phone
		merged.EmergencyContact = overlay.EmergencyContact
		merged.LicenseNumber = overlay.LicenseNumber
		merged.LicenseExpiry = overlay.LicenseExpiry
	}
	return merged
}
