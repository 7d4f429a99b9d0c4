package gallery

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Variant selects how the gallery starts.
type Variant string

const (
	// VariantClassic builds and animates the scene immediately.
	VariantClassic Variant = "classic"
	// VariantGift waits behind an entry button and a confetti burst.
	VariantGift Variant = "gift"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the host needs to build and run a gallery.
// Zero-valued fields are filled from the variant defaults by Normalize.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`
	// Variant is "classic" or "gift".
	Variant Variant `toml:"variant"`
	// Width and Height are the initial window size in logical pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Images are the panel image sources in ring order. Entries starting with
	// http:// or https:// are fetched; anything else is read from ImageDir.
	Images []string `toml:"images"`
	// ImageDir is the directory local image sources are resolved against.
	ImageDir string `toml:"image_dir"`
	// RotationStep is the pivot rotation per frame in radians.
	RotationStep float64 `toml:"rotation_step"`
	// ReflectionScale sizes the floor reflection buffer relative to the
	// viewport's device resolution (1 = full, 0.5 = half).
	ReflectionScale float64 `toml:"reflection_scale"`
	// FloorTint is the reflective floor tint as a hex color.
	FloorTint string `toml:"floor_tint"`
	// Seed makes the backdrop and confetti reproducible. 0 means unseeded.
	Seed uint64 `toml:"seed"`
	// TPS is the display refresh rate the frame loop is driven at.
	TPS int `toml:"tps"`
	// Debug enables debug logging from the CLI.
	Debug bool `toml:"debug"`
}

// defaultImages are the six reference panels.
var defaultImages = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}

// DefaultConfig returns the classic variant: full-resolution reflections and
// a 0.005 rad/frame spin.
func DefaultConfig() Config {
	return Config{
		Title:           "Memory Gallery",
		Variant:         VariantClassic,
		Width:           1280,
		Height:          720,
		Images:          append([]string(nil), defaultImages...),
		ImageDir:        ".",
		RotationStep:    0.005,
		ReflectionScale: 1,
		FloorTint:       "#222222",
		TPS:             60,
	}
}

// GiftConfig returns the gift variant: half-resolution reflections and a
// slower 0.0025 rad/frame spin.
func GiftConfig() Config {
	cfg := DefaultConfig()
	cfg.Title = "A Gift For You"
	cfg.Variant = VariantGift
	cfg.RotationStep = 0.0025
	cfg.ReflectionScale = 0.5
	return cfg
}

// ConfigFor returns the defaults for variant v.
func ConfigFor(v Variant) Config {
	if v == VariantGift {
		return GiftConfig()
	}
	return DefaultConfig()
}

// Normalize fills zero-valued fields from the defaults of c.Variant.
// An empty Images list is kept empty when Images was explicitly set to [].
func (c Config) Normalize() Config {
	if c.Variant == "" {
		c.Variant = VariantClassic
	}
	def := ConfigFor(c.Variant)
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Images == nil {
		c.Images = def.Images
	}
	if c.ImageDir == "" {
		c.ImageDir = def.ImageDir
	}
	if c.RotationStep == 0 {
		c.RotationStep = def.RotationStep
	}
	if c.ReflectionScale == 0 {
		c.ReflectionScale = def.ReflectionScale
	}
	if c.FloorTint == "" {
		c.FloorTint = def.FloorTint
	}
	if c.TPS == 0 {
		c.TPS = def.TPS
	}
	return c
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantClassic, VariantGift:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ReflectionScale <= 0 || c.ReflectionScale > 1 {
		return fmt.Errorf("%w: reflection_scale %v not in (0, 1]", ErrInvalidConfig, c.ReflectionScale)
	}
	if c.RotationStep < 0 {
		return fmt.Errorf("%w: negative rotation_step %v", ErrInvalidConfig, c.RotationStep)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: negative tps %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := c.floorTint(); err != nil {
		return fmt.Errorf("%w: floor_tint: %w", ErrInvalidConfig, err)
	}
	for i, src := range c.Images {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("%w: image %d is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}

// floorTint parses FloorTint.
func (c Config) floorTint() (Color, error) {
	fc, err := colorful.Hex(c.FloorTint)
	if err != nil {
		return Color{}, err
	}
	return Color{R: fc.R, G: fc.G, B: fc.B, A: 1}, nil
}

// ParseConfig decodes TOML into a normalized, validated Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// PanelSpecs returns the configured images as ordered panel specs.
func (c Config) PanelSpecs() []PanelSpec {
	return PanelSpecs(c.Images...)
}
