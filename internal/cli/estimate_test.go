package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", "", "--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateCommandDefaults(t *testing.T) {
	out, err := runCommand(t, "estimate")
	require.NoError(t, err)

	// Flag defaults reproduce the early-scope reference building.
	assert.Contains(t, out, "Total: 318.0 kg CO2e/m² BTA (0.318 t)")
	assert.Contains(t, out, "-57.0 kg (-15.2%)")
}

func TestEstimateCommandJSON(t *testing.T) {
	out, err := runCommand(t, "estimate", "--output", "json")
	require.NoError(t, err)

	var envelope estimateEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))

	assert.NotEmpty(t, envelope.RunID)
	assert.False(t, envelope.GeneratedAt.IsZero())
	assert.InDelta(t, 318.0, envelope.Result.TotalKgPerM2, 1e-9)
	assert.InDelta(t, -57.0, envelope.Result.DeltaKg, 1e-9)
	assert.Len(t, envelope.Result.Breakdown, 4)
}

func TestEstimateCommandFlags(t *testing.T) {
	t.Run("timber frame lowers the total", func(t *testing.T) {
		out, err := runCommand(t, "estimate", "--system", "timber", "--output", "json")
		require.NoError(t, err)

		var envelope estimateEnvelope
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		assert.Less(t, envelope.Result.TotalKgPerM2, 318.0)
		assert.InDelta(t, 0.060, envelope.Result.TimberTonPerM2, 1e-9)
	})

	t.Run("timber override only applies when set", func(t *testing.T) {
		out, err := runCommand(t, "estimate", "--timber", "0", "--output", "json")
		require.NoError(t, err)

		var envelope estimateEnvelope
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		assert.Zero(t, envelope.Result.TimberTonPerM2, "explicit zero override beats the concrete default")
	})

	t.Run("window-wall ratio override changes the envelope", func(t *testing.T) {
		base, err := runCommand(t, "estimate", "--window-ratio", "0.4", "--output", "json")
		require.NoError(t, err)
		tweaked, err := runCommand(t, "estimate", "--window-ratio", "0.4", "--window-wall-ratio", "2.0", "--output", "json")
		require.NoError(t, err)

		var baseEnv, tweakedEnv estimateEnvelope
		require.NoError(t, json.Unmarshal([]byte(base), &baseEnv))
		require.NoError(t, json.Unmarshal([]byte(tweaked), &tweakedEnv))
		assert.Less(t, tweakedEnv.Result.TotalKgPerM2, baseEnv.Result.TotalKgPerM2)
	})

	t.Run("invalid inputs surface notes but succeed", func(t *testing.T) {
		out, err := runCommand(t, "estimate", "--floors", "0", "--form-factor", "5.0")
		require.NoError(t, err)
		assert.Contains(t, out, "NOTES")
		assert.Contains(t, out, "floor count")
		assert.Contains(t, out, "form factor")
	})
}

func TestEstimateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown boundary", args: []string{"estimate", "--boundary", "2022"}},
		{name: "unknown system", args: []string{"estimate", "--system", "masonry"}},
		{name: "unknown output format", args: []string{"estimate", "--output", "xml"}},
		{name: "missing scenario file", args: []string{"estimate", "--scenario", "absent.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEstimateCommandScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
boundary: early-scope
geometry:
  form_factor: 0.45
  window_ratio: 0.20
  floors: 6
below_grade:
  underground_garage: true
`), 0600))

	out, err := runCommand(t, "estimate", "--scenario", path, "--output", "json")
	require.NoError(t, err)

	var envelope estimateEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))

	assert.Equal(t, "garage", envelope.Scenario)
	// 318 + 48*0.9*(0.5/0.5) garage add-on.
	assert.InDelta(t, 361.2, envelope.Result.TotalKgPerM2, 1e-9)
}
