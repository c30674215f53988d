package config_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/atlas-indoor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, config.Translation{}, cfg.Translation)
	assert.Empty(t, cfg.MetricsFile)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("ATLAS_INDOOR_ENV", "local")
	t.Setenv("ATLAS_INDOOR_WORKERS", "8")
	t.Setenv("ATLAS_INDOOR_INPUT", "/data/floor-1.json")
	t.Setenv("ATLAS_INDOOR_OUTPUT", "/data/floor-1.moved.json")
	t.Setenv("ATLAS_INDOOR_TRANSLATE_DX", "2.5")
	t.Setenv("ATLAS_INDOOR_TRANSLATE_DY", "-3")
	t.Setenv("ATLAS_INDOOR_METRICS_FILE", "/var/lib/node_exporter/atlas_indoor.prom")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "/data/floor-1.json", cfg.Input)
	assert.Equal(t, "/data/floor-1.moved.json", cfg.Output)
	assert.Equal(t, config.Translation{DX: 2.5, DY: -3}, cfg.Translation)
	assert.Equal(t, "/var/lib/node_exporter/atlas_indoor.prom", cfg.MetricsFile)
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("ATLAS_INDOOR_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer types", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TranslationError(t *testing.T) {
	t.Run("dx", func(t *testing.T) {
		t.Setenv("ATLAS_INDOOR_TRANSLATE_DX", "east")

		assert.PanicsWithValue(t, "failed to parse translate.dx from configuration, must be a number", func() {
			config.MustLoad()
		})
	})

	t.Run("dy", func(t *testing.T) {
		t.Setenv("ATLAS_INDOOR_TRANSLATE_DY", "north")

		assert.PanicsWithValue(t, "failed to parse translate.dy from configuration, must be a number", func() {
			config.MustLoad()
		})
	})
}

func TestMustLoad_ValidationError(t *testing.T) {
	t.Setenv("ATLAS_INDOOR_WORKERS", "0")

	assert.PanicsWithValue(t, "config validation failed:\n  - workers must be positive, got 0", func() {
		config.MustLoad()
	})
}

func TestMustLoad_NonFiniteTranslation(t *testing.T) {
	t.Run("NaN dx", func(t *testing.T) {
		t.Setenv("ATLAS_INDOOR_TRANSLATE_DX", "NaN")

		assert.PanicsWithValue(t, "config validation failed:\n  - translate.dx must be finite, got NaN", func() {
			config.MustLoad()
		})
	})

	t.Run("infinite dy", func(t *testing.T) {
		t.Setenv("ATLAS_INDOOR_TRANSLATE_DY", "-Inf")

		assert.PanicsWithValue(t, "config validation failed:\n  - translate.dy must be finite, got -Inf", func() {
			config.MustLoad()
		})
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := config.Config{Workers: 1, Input: "-", Output: "-"}
	require.NoError(t, valid.Validate())

	invalid := config.Config{Workers: -1, Translation: config.Translation{DX: math.Inf(1)}}
	err := invalid.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "workers must be positive, got -1")
	assert.ErrorContains(t, err, "input is required")
	assert.ErrorContains(t, err, "output is required")
	assert.ErrorContains(t, err, "translate.dx must be finite, got +Inf")
}
