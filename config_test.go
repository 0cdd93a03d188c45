package frames

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.FrameRate)
	assert.Equal(t, Gray(50), cfg.Background)
	assert.Equal(t, 0.5, cfg.Eye.Scale)
	assert.Equal(t, 1.03, cfg.Eye.ZoomFactor)
	assert.Equal(t, MouseButtonMiddle, cfg.Eye.ZoomButton)
	assert.Equal(t, MouseButtonLeft, cfg.Eye.ToggleButton)
	assert.False(t, cfg.Eye.Visible)
	assert.Equal(t, Vec2{500, 250}, cfg.Rotation.Pivot)
	assert.Equal(t, -math.Pi/4, cfg.Rotation.Beta)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
frame_rate = 60
background = "#202020"

[eye]
visible = true
zoom_button = "right"
position = { x = 350, y = 120 }

[rotation]
wheel_scale = 0.1
`))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, Gray(0x20), cfg.Background)
	assert.True(t, cfg.Eye.Visible)
	assert.Equal(t, MouseButtonRight, cfg.Eye.ZoomButton)
	assert.Equal(t, Vec2{350, 120}, cfg.Eye.Position)
	assert.Equal(t, 0.1, cfg.Rotation.WheelScale)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1.03, cfg.Eye.ZoomFactor)
	assert.Equal(t, 0.5, cfg.Eye.Scale)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"syntax", `frame_rate = `, "parse config"},
		{"color", `background = "#12"`, "invalid color"},
		{"frame rate", `frame_rate = 0`, "frame_rate 0 must be positive"},
		{"zoom", "[eye]\nzoom_factor = 1", "eye.zoom_factor"},
		{"scale", "[eye]\nscale = 5000", "eye.scale"},
		{"slop", "[input]\nclick_slop = -1", "input.click_slop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameRate = -1
	cfg.Width = -5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame_rate")
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 800\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	w, h := cfg.Size(700, 700)
	assert.Equal(t, 800, w)
	assert.Equal(t, 700, h)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorContains(t, err, "load config")
}

func TestColorText(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", ColorWhite},
		{"#000000", ColorBlack},
		{"cc660096", RGBA8(204, 102, 0, 150)},
	}
	for _, tt := range tests {
		var c Color
		require.NoError(t, c.UnmarshalText([]byte(tt.in)), tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	text, err := RGBA8(204, 102, 0, 150).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#cc660096", string(text))
}

func TestMouseButtonText(t *testing.T) {
	var b MouseButton
	require.NoError(t, b.UnmarshalText([]byte("Center")))
	assert.Equal(t, MouseButtonMiddle, b)
	assert.Error(t, b.UnmarshalText([]byte("fourth")))

	var k Key
	require.NoError(t, k.UnmarshalText([]byte("space")))
	assert.Equal(t, KeySpace, k)
	assert.Equal(t, "Key(200)", Key(200).String())
}
