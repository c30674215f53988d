package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by MustLoad,
// e.g. ATLAS_INDOOR_TRANSLATE_DX for translate.dx.
const EnvPrefix = "ATLAS_INDOOR"

// Config holds the configuration settings for the linear objects translator.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Workers: The number of concurrent workers translating entries.
// - Input: Path of the document to read, "-" for standard input.
// - Output: Path of the document to write, "-" for standard output.
// - Translation: The vector every linear object is moved by.
// - MetricsFile: Where to write Prometheus metrics after a run, empty to skip.
type Config struct {
	Env         string      // Env is the current environment: local, development, production.
	Workers     int         // The number of concurrent workers.
	Input       string      // Input document path.
	Output      string      // Output document path.
	Translation Translation // Translation holds the translation vector.
	MetricsFile string      // Prometheus textfile collector output.
}

// Translation is the vector (DX, DY) applied to every linear object.
type Translation struct {
	DX float64 // Translation on the X axis.
	DY float64 // Translation on the Y axis.
}

// MustLoad loads the configuration from defaults, an optional config.yaml in the working
// directory or ./configs, and ATLAS_INDOOR_* environment variables, in increasing priority.
// It panics when a value cannot be parsed or the result is invalid.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("workers", 4)
	vpr.SetDefault("input", "-")
	vpr.SetDefault("output", "-")
	vpr.SetDefault("translate.dx", 0.0)
	vpr.SetDefault("translate.dy", 0.0)
	vpr.SetDefault("metrics.file", "")

	vpr.SetConfigName("config")
	vpr.SetConfigType("yaml")
	vpr.AddConfigPath(".")
	vpr.AddConfigPath("./configs")
	if err := vpr.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read configuration file")
		}
	}

	vpr.SetEnvPrefix(EnvPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	workers, err := cast.ToIntE(vpr.Get("workers"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	dX, err := cast.ToFloat64E(vpr.Get("translate.dx"))
	if err != nil {
		panic("failed to parse translate.dx from configuration, must be a number")
	}

	dY, err := cast.ToFloat64E(vpr.Get("translate.dy"))
	if err != nil {
		panic("failed to parse translate.dy from configuration, must be a number")
	}

	cfg := &Config{
		Env:         vpr.GetString("env"),
		Workers:     workers,
		Input:       vpr.GetString("input"),
		Output:      vpr.GetString("output"),
		Translation: Translation{DX: dX, DY: dY},
		MetricsFile: vpr.GetString("metrics.file"),
	}

	if err = cfg.Validate(); err != nil {
		panic(err.Error())
	}

	return cfg
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Workers <= 0 {
		errs = append(errs, fmt.Sprintf("workers must be positive, got %d", c.Workers))
	}
	if c.Input == "" {
		errs = append(errs, "input is required")
	}
	if c.Output == "" {
		errs = append(errs, "output is required")
	}
	if math.IsNaN(c.Translation.DX) || math.IsInf(c.Translation.DX, 0) {
		errs = append(errs, fmt.Sprintf("translate.dx must be finite, got %v", c.Translation.DX))
	}
	if math.IsNaN(c.Translation.DY) || math.IsInf(c.Translation.DY, 0) {
		errs = append(errs, fmt.Sprintf("translate.dy must be finite, got %v", c.Translation.DY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
