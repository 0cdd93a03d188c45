package frames

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable parameters of a sketch run. Zero Width/Height
// mean "use the sketch's own size".
type Config struct {
	Width      int   `toml:"width"`
	Height     int   `toml:"height"`
	FrameRate  int   `toml:"frame_rate"`
	Background Color `toml:"background"`
	Debug      bool  `toml:"debug"`

	Eye      EyeConfig      `toml:"eye"`
	Rotation RotationConfig `toml:"rotation"`
	Input    InputConfig    `toml:"input"`
}

// EyeConfig parameterises an Eye. ZoomFactor and WheelScale are the drag
// and wheel gains of the minimap sketch.
type EyeConfig struct {
	Position     Vec2        `toml:"position"`
	Orientation  float64     `toml:"orientation"`
	Scale        float64     `toml:"scale"`
	Visible      bool        `toml:"visible"`
	ZoomFactor   float64     `toml:"zoom_factor"`
	WheelScale   float64     `toml:"wheel_scale"`
	MinScale     float64     `toml:"min_scale"`
	MaxScale     float64     `toml:"max_scale"`
	ZoomButton   MouseButton `toml:"zoom_button"`
	ToggleButton MouseButton `toml:"toggle_button"`
	GlideSeconds float32     `toml:"glide_seconds"`
}

// RotationConfig parameterises the pivot-rotation sketch.
type RotationConfig struct {
	Pivot      Vec2    `toml:"pivot"`
	Beta       float64 `toml:"beta"`
	WheelScale float64 `toml:"wheel_scale"`
}

// InputConfig controls how raw pointer samples become events.
type InputConfig struct {
	// ClickSlop is how far, in pixels, a pointer may travel between press
	// and release for the release to count as a click.
	ClickSlop float64 `toml:"click_slop"`
	// WheelStep converts one backend wheel notch into a wheel delta.
	WheelStep float64 `toml:"wheel_step"`
}

// DefaultConfig returns the stock parameters of the sketches.
func DefaultConfig() Config {
	return Config{
		FrameRate:  15,
		Background: Gray(50),
		Eye: EyeConfig{
			Scale:        0.5,
			ZoomFactor:   1.03,
			WheelScale:   1,
			MinScale:     1e-3,
			MaxScale:     1e3,
			ZoomButton:   MouseButtonMiddle,
			ToggleButton: MouseButtonLeft,
			GlideSeconds: 0.6,
		},
		Rotation: RotationConfig{
			Pivot:      Vec2{500, 250},
			Beta:       -math.Pi / 4,
			WheelScale: 0.5,
		},
		Input: InputConfig{
			ClickSlop: 4,
			WheelStep: 1,
		},
	}
}

// ParseConfig decodes TOML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must not be negative", c.Width, c.Height))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be positive", c.FrameRate))
	}
	if c.Eye.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("eye.zoom_factor %v must be greater than 1", c.Eye.ZoomFactor))
	}
	if c.Eye.MinScale <= 0 || c.Eye.MaxScale < c.Eye.MinScale {
		errs = append(errs, fmt.Errorf("eye scale range [%v, %v] is invalid", c.Eye.MinScale, c.Eye.MaxScale))
	}
	if c.Eye.Scale < c.Eye.MinScale || c.Eye.Scale > c.Eye.MaxScale {
		errs = append(errs, fmt.Errorf("eye.scale %v is outside [%v, %v]", c.Eye.Scale, c.Eye.MinScale, c.Eye.MaxScale))
	}
	if c.Input.ClickSlop < 0 {
		errs = append(errs, fmt.Errorf("input.click_slop %v must not be negative", c.Input.ClickSlop))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Size returns the configured size, falling back to the given defaults.
func (c Config) Size(defW, defH int) (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = defW
	}
	if h == 0 {
		h = defH
	}
	return w, h
}

// MarshalText implements encoding.TextMarshaler as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	to8 := func(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for "#rgb", "#rrggbb"
// and "#rrggbbaa".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("frames: invalid color %q", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("frames: invalid color %q: %w", string(text), err)
	}
	*c = RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}
