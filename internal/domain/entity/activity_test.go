package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityJSONShape(t *testing.T) {
	creator := &User{
		ID:      uuid.New(),
		Email:   "alice@example.edu",
		Name:    "Alice",
		Contact: "alice@example.edu",
		Admin:   true,
	}
	joinee := &User{
		ID:    uuid.New(),
		Email: "bob@example.edu",
		Name:  "Bob",
	}

	activity := &Activity{
		ID:           uuid.New(),
		Title:        "Evening Basketball",
		LocationName: "Campus Gym",
		Location:     orb.Point{121.5397, 25.0173},
		StartsAt:     time.Now(),
		EndsAt:       time.Now().Add(2 * time.Hour),
		CreatedBy:    creator.ID,
		Status:       ActivityStatusActive,
		Creator:      creator.Summary(),
		Joinees:      []*UserSummary{joinee.Summary()},
	}

	raw, err := json.Marshal(activity)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "title")
	assert.Contains(t, decoded, "created_by")
	assert.Contains(t, decoded, "max_participants")
	assert.NotContains(t, decoded, "ID")
	assert.NotContains(t, decoded, "CreatedBy")
	assert.NotContains(t, decoded, "ExpiresAt")

	embeddedCreator, ok := decoded["creator"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", embeddedCreator["name"])
	assert.Equal(t, "alice@example.edu", embeddedCreator["contact"])
	assert.NotContains(t, embeddedCreator, "email")
	assert.NotContains(t, embeddedCreator, "Email")
	assert.NotContains(t, embeddedCreator, "Admin")

	joinees, ok := decoded["joinees"].([]any)
	require.True(t, ok)
	require.Len(t, joinees, 1)
	embeddedJoinee, ok := joinees[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, embeddedJoinee, "email")
	assert.NotContains(t, embeddedJoinee, "created_at")
}

func TestUserJSONHidesInternalFlags(t *testing.T) {
	user := &User{
		ID:     uuid.New(),
		Email:  "carol@example.edu",
		Name:   "Carol",
		Admin:  true,
		Active: true,
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "image_url")
	assert.NotContains(t, decoded, "Admin")
	assert.NotContains(t, decoded, "admin")
	assert.NotContains(t, decoded, "Active")
	assert.NotContains(t, decoded, "active")
}
