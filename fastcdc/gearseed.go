package fastcdc

import (
	"fmt"

	"github.com/vitalvas/gocdc/xconfig"
)

// presetSettings is the shape LoadGearSeed and LoadPreset read from the
// environment (prefix FASTCDC_) and an optional settings file, via xconfig.
type presetSettings struct {
	GearSeed uint64 `yaml:"gear_seed" default:"318046"`
	Preset   string `yaml:"preset" default:"medium"`
}

// LoadGearSeed returns the gear seed an embedding operator configured via
// the FASTCDC_GEAR_SEED environment variable (or a settings file passed
// through files), falling back to DefaultGearSeed.
func LoadGearSeed(files ...string) (uint64, error) {
	var settings presetSettings
	opts := []xconfig.Option{xconfig.WithEnv("FASTCDC")}
	if len(files) > 0 {
		opts = append(opts, xconfig.WithFiles(files...))
	}
	if err := xconfig.Load(&settings, opts...); err != nil {
		return 0, fmt.Errorf("fastcdc: loading gear seed: %w", err)
	}
	return settings.GearSeed, nil
}

// LoadPreset returns the named size preset ("small", "medium", "large") an
// operator configured via FASTCDC_PRESET or a settings file, built with
// whatever gear seed was configured alongside it.
func LoadPreset(files ...string) (*Config, error) {
	var settings presetSettings
	opts := []xconfig.Option{xconfig.WithEnv("FASTCDC")}
	if len(files) > 0 {
		opts = append(opts, xconfig.WithFiles(files...))
	}
	if err := xconfig.Load(&settings, opts...); err != nil {
		return nil, fmt.Errorf("fastcdc: loading preset: %w", err)
	}

	var presetFn func() (*Config, error)
	switch settings.Preset {
	case "small":
		presetFn = SmallPreset
	case "medium":
		presetFn = MediumPreset
	case "large":
		presetFn = LargePreset
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown preset %q", settings.Preset)}
	}

	if settings.GearSeed == DefaultGearSeed {
		return presetFn()
	}

	cfg, err := presetFn()
	if err != nil {
		return nil, err
	}
	return New(cfg.minSize, cfg.avgSize, cfg.maxSize, cfg.level, WithGearSeed(settings.GearSeed), WithLogger(cfg.logger), WithBufferSize(cfg.bufSize))
}
