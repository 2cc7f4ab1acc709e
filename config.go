package mdexport

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config controls page geometry and the output file name. All lengths are
// in millimeters. Zero-valued fields fall back to defaults when applied.
type Config struct {
	PageWidth      float64 `yaml:"page_width"`
	PageHeight     float64 `yaml:"page_height"`
	Margin         float64 `yaml:"margin"`
	MaxImageHeight float64 `yaml:"max_image_height"`
	OutputName     string  `yaml:"output_name"`
}

// DefaultConfig returns the baseline A4 configuration.
func DefaultConfig() Config {
	return Config{
		PageWidth:      DefaultPageWidth,
		PageHeight:     DefaultPageHeight,
		Margin:         DefaultMargin,
		MaxImageHeight: DefaultMaxImageHeight,
		OutputName:     DefaultOutputName,
	}
}

// applyConfig overlays non-zero fields of src onto dst.
func applyConfig(dst *Config, src Config) {
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if src.PageHeight > 0 {
		dst.PageHeight = src.PageHeight
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.MaxImageHeight > 0 {
		dst.MaxImageHeight = src.MaxImageHeight
	}
	if src.OutputName != "" {
		dst.OutputName = src.OutputName
	}
}

// LoadConfig reads and validates a YAML config file. Omitted fields stay
// zero and keep their defaults when the config is applied to a Service.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PageWidth < 0 || c.PageHeight < 0 || c.Margin < 0 || c.MaxImageHeight < 0 {
		return fmt.Errorf("%w: lengths must not be negative", ErrInvalidConfig)
	}

	merged := DefaultConfig()
	applyConfig(&merged, c)
	if 2*merged.Margin >= merged.PageWidth || 2*merged.Margin >= merged.PageHeight {
		return fmt.Errorf("%w: margin %.1f leaves no content area on a %.0fx%.0f page",
			ErrInvalidConfig, merged.Margin, merged.PageWidth, merged.PageHeight)
	}
	return nil
}
