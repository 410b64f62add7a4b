// pkg/registry/seed_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeSeedFile(t, `{
			"version": "1.0.0",
			"activities": [
				{
					"name": "Chess Club",
					"description": "Learn strategies",
					"schedule": "Fridays",
					"max_participants": 12,
					"participants": ["michael@mergington.edu"]
				}
			]
		}`)

		seed, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, seed.Activities, 1)
		assert.Equal(t, "Chess Club", seed.Activities[0].Name)
		assert.Equal(t, 12, seed.Activities[0].MaxParticipants)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestLoadSeed_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "activities missing",
			content: `{"version": "1.0.0"}`,
		},
		{
			name: "required field missing",
			content: `{"activities": [
				{"name": "Chess Club", "description": "x", "schedule": "y", "participants": []}
			]}`,
		},
		{
			name: "negative capacity",
			content: `{"activities": [
				{"name": "Chess Club", "description": "x", "schedule": "y",
				 "max_participants": -1, "participants": []}
			]}`,
		},
		{
			name: "empty activity name",
			content: `{"activities": [
				{"name": "", "description": "x", "schedule": "y",
				 "max_participants": 5, "participants": []}
			]}`,
		},
		{
			name: "unknown field",
			content: `{"activities": [
				{"name": "Chess Club", "description": "x", "schedule": "y",
				 "max_participants": 5, "participants": [], "room": "B12"}
			]}`,
		},
		{
			name:    "not json",
			content: `activities: []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeedFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultSeed_PassesOwnSchema(t *testing.T) {
	require.NoError(t, validateSeed(defaultSeed))
}
