package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klimatkalk/klimatkalk/internal/screening"
)

const fullScenario = `
name: timber-block
boundary: extended-scope
geometry:
  form_factor: 0.52
  window_ratio: 0.25
  floors: 5
  building_height_m: 15.5
structure:
  system: timber
  method: clt-massive-frame
  heavy_design: false
materials:
  climate_improved: true
  applicability: 0.6
below_grade:
  basement: true
  underground_garage: true
  parking_ratio: 0.7
  atemp_to_bta: 0.88
timber_t_per_m2: 0.055
model:
  window_to_wall_intensity_ratio: 3.5
  garage_add_kg_per_m2_atemp: 52.0
`

func TestParseScenarioFull(t *testing.T) {
	sc, err := ParseScenario([]byte(fullScenario))
	require.NoError(t, err)

	in, err := sc.Inputs()
	require.NoError(t, err)

	assert.Equal(t, screening.BoundaryExtended, in.SystemBoundary)
	assert.InDelta(t, 0.52, in.FormFactor, 1e-9)
	assert.InDelta(t, 0.25, in.WindowRatio, 1e-9)
	assert.Equal(t, 5, in.Floors)
	assert.InDelta(t, 15.5, in.BuildingHeightM, 1e-9)
	assert.Equal(t, screening.SystemTimber, in.StructuralSystem)
	assert.Equal(t, screening.MethodCLTMassiveFrame, in.Method)
	assert.False(t, in.HeavyStructuralDesign)
	assert.True(t, in.ClimateImprovedMaterials)
	assert.InDelta(t, 0.6, in.ClimateImprovedApplicability, 1e-9)
	assert.True(t, in.Basement)
	assert.True(t, in.UndergroundGarage)
	assert.InDelta(t, 0.7, in.ParkingRatio, 1e-9)
	assert.InDelta(t, 0.88, in.AtempToBTA, 1e-9)
	require.NotNil(t, in.TimberTPerM2Override)
	assert.InDelta(t, 0.055, *in.TimberTPerM2Override, 1e-9)

	cfg, err := sc.Config()
	require.NoError(t, err)
	assert.InDelta(t, 3.5, cfg.WindowToWallIntensityRatio, 1e-9)
	assert.InDelta(t, 52.0, cfg.GarageAddKgPerM2Atemp, 1e-9)
	// Untouched coefficients keep their defaults.
	assert.InDelta(t, 25.0, cfg.BasementAddKgPerM2, 1e-9)
}

func TestParseScenarioDefaults(t *testing.T) {
	sc, err := ParseScenario([]byte(`
boundary: early-scope
geometry:
  form_factor: 0.45
  window_ratio: 0.20
  floors: 6
`))
	require.NoError(t, err)

	in, err := sc.Inputs()
	require.NoError(t, err)

	assert.Equal(t, screening.SystemConcrete, in.StructuralSystem)
	assert.Equal(t, screening.MethodPrefabConcrete, in.Method)
	assert.InDelta(t, 1.0, in.ClimateImprovedApplicability, 1e-9)
	assert.InDelta(t, 0.5, in.ParkingRatio, 1e-9)
	assert.InDelta(t, 0.90, in.AtempToBTA, 1e-9)
	assert.Nil(t, in.TimberTPerM2Override)

	cfg, err := sc.Config()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cfg.WindowToWallIntensityRatio, 1e-9)
}

func TestParseScenarioRejectsBadEnums(t *testing.T) {
	t.Run("unknown boundary", func(t *testing.T) {
		sc, err := ParseScenario([]byte("boundary: lifecycle\n"))
		require.NoError(t, err)

		_, err = sc.Inputs()
		assert.ErrorIs(t, err, screening.ErrUnknownBoundary)
	})

	t.Run("unknown structural system", func(t *testing.T) {
		sc, err := ParseScenario([]byte(`
boundary: early-scope
structure:
  system: masonry
`))
		require.NoError(t, err)

		_, err = sc.Inputs()
		assert.ErrorIs(t, err, screening.ErrUnknownSystem)
	})
}

func TestParseScenarioRejectsUnknownKeys(t *testing.T) {
	_, err := ParseScenario([]byte(`
boundary: early-scope
form_factor: 0.45
`))
	assert.Error(t, err, "top-level typos should not be silently ignored")
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()

	t.Run("name defaults to the file base name", func(t *testing.T) {
		path := filepath.Join(dir, "corner-block.yaml")
		require.NoError(t, os.WriteFile(path, []byte("boundary: early-scope\n"), 0600))

		sc, err := LoadScenario(path)
		require.NoError(t, err)
		assert.Equal(t, "corner-block", sc.Name)
	})

	t.Run("explicit name wins", func(t *testing.T) {
		path := filepath.Join(dir, "other.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: tower\nboundary: early-scope\n"), 0600))

		sc, err := LoadScenario(path)
		require.NoError(t, err)
		assert.Equal(t, "tower", sc.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenario(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestScenarioConfigValidatesOverrides(t *testing.T) {
	// Overrides run through ModelConfig.Validate; the default config with
	// knob overrides stays valid.
	sc, err := ParseScenario([]byte(`
boundary: early-scope
model:
  basement_add_kg_per_m2: 40.0
`))
	require.NoError(t, err)

	cfg, err := sc.Config()
	require.NoError(t, err)
	assert.InDelta(t, 40.0, cfg.BasementAddKgPerM2, 1e-9)
}
