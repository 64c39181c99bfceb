package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/geopt/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops YAML content into a temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const fullScenario = `
origin: { lat: -34.5952, lon: -58.3779 }
amenities:
  - { name: disco,    lat: -34.5962, lon: -58.3847, weight: 1 }
  - { name: obelisk,  lat: -34.6035, lon: -58.3809, weight: 2 }
  - { lat: -34.5989, lon: -58.3740, weight: 3 }
street:
  from: { lat: -34.5982, lon: -58.3836 }
  to:   { lat: -34.5978, lon: -58.3803 }
`

// TestLoad_Full decodes a complete constrained scenario.
func TestLoad_Full(t *testing.T) {
	s, err := scenario.Load(writeFile(t, fullScenario))
	require.NoError(t, err)

	assert.Equal(t, -34.5952, s.Origin.Lat)
	assert.Equal(t, -58.3779, s.Origin.Lon)

	require.Len(t, s.Amenities, 3)
	assert.Equal(t, []string{"disco", "obelisk", ""}, s.Names)
	assert.Equal(t, 2.0, s.Amenities[1].Weight)
	assert.Equal(t, -34.6035, s.Amenities[1].Point.Lat)

	require.NotNil(t, s.Street)
	assert.Equal(t, -58.3836, s.Street.From.Lon)
	assert.Equal(t, -34.5978, s.Street.To.Lat)
}

// TestLoad_Unconstrained: street is optional.
func TestLoad_Unconstrained(t *testing.T) {
	s, err := scenario.Load(writeFile(t, `
origin: { lat: 0, lon: 0 }
amenities:
  - { lat: 0.01, lon: 0, weight: 1 }
`))
	require.NoError(t, err)
	assert.Nil(t, s.Street)
	assert.Len(t, s.Amenities, 1)
}

// TestLoad_StructuralErrors covers missing-field rejection.
func TestLoad_StructuralErrors(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{
			name:    "missing origin lat",
			yaml:    "origin: { lon: 1 }\namenities:\n  - { lat: 0, lon: 0, weight: 1 }\n",
			wantSub: "origin.lat",
		},
		{
			name:    "no amenities",
			yaml:    "origin: { lat: 0, lon: 0 }\n",
			wantSub: "amenities",
		},
		{
			name:    "missing weight",
			yaml:    "origin: { lat: 0, lon: 0 }\namenities:\n  - { lat: 0, lon: 0 }\n",
			wantSub: "amenities[0].weight",
		},
		{
			name:    "street missing endpoint",
			yaml:    "origin: { lat: 0, lon: 0 }\namenities:\n  - { lat: 0, lon: 0, weight: 1 }\nstreet:\n  from: { lat: 0, lon: 0 }\n",
			wantSub: "street.to.lat",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(writeFile(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

// TestLoad_FileErrors: unreadable path and malformed YAML.
func TestLoad_FileErrors(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = scenario.Load(writeFile(t, "origin: [not a map"))
	assert.Error(t, err)
}
