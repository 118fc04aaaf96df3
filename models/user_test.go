package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardock/cardock-api/models"
)

func TestMerge_IdentityOnly(t *testing.T) {
	user := &models.User{
		ID: "u1",
		Details: models.UserDetails{
			Email: "jo@example.com",
			Name:  "Jo",
		},
	}

	merged := models.Merge(user, nil)

	assert.Equal(t, "u1", merged.ID)
	assert.Equal(t, "jo@example.com", merged.Email)
	assert.Equal(t, "Jo", merged.Name)
	assert.Empty(t, merged.Phone)
}

func TestMerge_OverlayWins(t *testing.T) {
	user := &models.User{
		ID: "u1",
		Details: models.UserDetails{
			Email: "jo@example.com",
			Name:  "Jo",
		},
	}
	overlay := &models.Profile{
		UserID: "u1",
		Name:   "Joanna",
		Phone:  "555-0100",
	}

	merged := models.Merge(user, overlay)

	assert.Equal(t, "Joanna", merged.Name)
	assert.Equal(t, "555-0100", merged.Phone)
	// email only lives on the identity record
	assert.Equal(t, "jo@example.com", merged.Email)
}

func TestMerge_EmptyOverlayNameKeepsIdentityName(t *testing.T) {
	user := &models.User{
		ID:      "u1",
		Details: models.UserDetails{Name: "Jo"},
	}
	overlay := &models.Profile{UserID: "u1", Address: "1 Main St"}

	merged := models.Merge(user, overlay)

	assert.Equal(t, "Jo", merged.Name)
	assert.Equal(t, "1 Main St", merged.Address)
}
