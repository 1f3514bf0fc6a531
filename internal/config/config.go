// Package config handles showcase configuration loading and management.
package config

// Config holds all showcase settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`   // 0 = unlimited (vsync paced)
	PixelRatio float32 `yaml:"pixel_ratio"` // 0 = use the display's ratio
	Gamma      float32 `yaml:"gamma"`       // output gamma; 0 disables correction
	GammaInput bool    `yaml:"gamma_input"` // linearise colours before lighting
}

// CameraConfig holds the perspective camera parameters.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

// ControlsConfig holds orbit controller settings.
type ControlsConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
}

// AnimationConfig holds the per-frame rotation increments, in radians.
type AnimationConfig struct {
	CubeSpin   float32 `yaml:"cube_spin"`
	SphereSpin float32 `yaml:"sphere_spin"`
}

// AssetsConfig holds texture locations. Relative paths resolve against Dir.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Smile      string `yaml:"smile"`
	NormalMap  string `yaml:"normal_map"`
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ShowHelpers   bool   `yaml:"show_helpers"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Screenshots above 1 are rendered offscreen at this multiple.
	ScreenshotScale int  `yaml:"screenshot_scale"`
	LogFPS          bool `yaml:"log_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the reference scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			Gamma:  2.2,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{-10, 0, 30},
		},
		Controls: ControlsConfig{
			EnableDamping: false,
			DampingFactor: 0.05,
			RotateSpeed:   1.0,
			ZoomSpeed:     1.0,
			PanSpeed:      1.0,
			MinDistance:   0,
			MaxDistance:   0, // 0 = unbounded
		},
		Animation: AnimationConfig{
			CubeSpin:   0.01,
			SphereSpin: 0.05,
		},
		Assets: AssetsConfig{
			Dir:        ".",
			Background: "images/space_background.jpg",
			Smile:      "images/smile.jpg",
			NormalMap:  "images/normals/textureNormal.png",
		},
		Debug: DebugConfig{
			ShowHelpers:     true,
			ScreenshotDir:   "screenshots",
			ScreenshotScale: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
