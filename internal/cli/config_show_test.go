package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/klimatkalk/klimatkalk/internal/screening"
)

func TestConfigShowCommand(t *testing.T) {
	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "baseline_kg_per_m2")
	assert.Contains(t, out, "early-scope")
	assert.Contains(t, out, "extended-scope")
	assert.Contains(t, out, "window_to_wall_intensity_ratio")

	// The output round-trips back into a config equal to the defaults.
	var cfg screening.ModelConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, screening.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}
