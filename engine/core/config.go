package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/quiltui/quilt/engine/colors"
)

// Config for the engine run. Zero-value fields fall back to the defaults
// from DefaultConfig.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`

	// ScratchCapacity is the initial size of the per-frame string buffer.
	ScratchCapacity int `toml:"scratch_capacity"`

	Assets AssetsConfig `toml:"assets"`
	UI     UIConfig     `toml:"ui"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
}

// UIConfig carries the interface tuning knobs applied at session start.
type UIConfig struct {
	VirtualResolution  float32 `toml:"virtual_resolution"`
	DragStartThreshold int     `toml:"drag_start_threshold"`
	ScrollSpeedDrag    float32 `toml:"scroll_speed_drag"`
	ScrollSpeedWheel   float32 `toml:"scroll_speed_wheel"`
	ScrollSpeedGamepad float32 `toml:"scroll_speed_gamepad"`
	Font               string  `toml:"font"`
	FontSize           float32 `toml:"font_size"`
}

func DefaultConfig() Config {
	return Config{
		Title:           "quilt",
		Width:           1280,
		Height:          720,
		VSync:           true,
		ClearColor:      colors.DarkGray,
		ScratchCapacity: 4096,
		Assets:          AssetsConfig{Dir: "assets"},
		UI: UIConfig{
			VirtualResolution:  1000,
			DragStartThreshold: 8,
			ScrollSpeedDrag:    2,
			ScrollSpeedWheel:   16,
			ScrollSpeedGamepad: 4,
			Font:               "RobotoMono.ttf",
			FontSize:           32,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
