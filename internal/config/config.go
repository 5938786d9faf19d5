// Package config handles flip-book configuration loading and management.
package config

import "time"

// Config holds all settings of the flip-book driver.
type Config struct {
	Book       BookConfig       `yaml:"book"`
	Curve      CurveConfig      `yaml:"curve"`
	Navigation NavigationConfig `yaml:"navigation"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// BookConfig holds the page list and page geometry.
type BookConfig struct {
	Pictures       []string `yaml:"pictures"`   // Picture names, two per leaf
	Cover          string   `yaml:"cover"`      // Front of the first leaf
	BackCover      string   `yaml:"back_cover"` // Back of the last leaf
	PageWidth      float32  `yaml:"page_width"`
	PageHeight     float32  `yaml:"page_height"`
	PageDepth      float32  `yaml:"page_depth"`
	HeightSegments int      `yaml:"height_segments"`
}

// CurveConfig holds the page-turn tuning constants.
type CurveConfig struct {
	InsideStrength  float32       `yaml:"inside_strength"`
	OutsideStrength float32       `yaml:"outside_strength"`
	TurningStrength float32       `yaml:"turning_strength"`
	Easing          float32       `yaml:"easing"`      // Smooth time of the swing, seconds
	EasingFold      float32       `yaml:"easing_fold"` // Smooth time of the fold, seconds
	Segments        int           `yaml:"segments"`
	TurnDuration    time.Duration `yaml:"turn_duration"`
	CurveSplit      int           `yaml:"curve_split"`
	FoldStart       int           `yaml:"fold_start"`
	StackOffsetDeg  float32       `yaml:"stack_offset_deg"`
	FoldAngleDeg    float32       `yaml:"fold_angle_deg"`
	Damping         string        `yaml:"damping"` // "exponential" or "spring"
}

// NavigationConfig holds page stepping delays.
type NavigationConfig struct {
	FastStep    time.Duration `yaml:"fast_step"`
	SlowStep    time.Duration `yaml:"slow_step"`
	FarDistance int           `yaml:"far_distance"`
}

// SimulationConfig holds the headless frame loop settings.
type SimulationConfig struct {
	FPS       int           `yaml:"fps"`
	Duration  time.Duration `yaml:"duration"`
	StartPage int           `yaml:"start_page"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Book: BookConfig{
			Pictures: []string{
				"DSC00680", "DSC00933", "DSC00966", "DSC00983",
				"DSC01011", "DSC01040", "DSC01064", "DSC01071",
				"DSC01103", "DSC01145", "DSC01420", "DSC01461",
				"DSC01489", "DSC02031", "DSC02064", "DSC02069",
			},
			Cover:          "book-cover",
			BackCover:      "book-back",
			PageWidth:      1.28,
			PageHeight:     1.71,
			PageDepth:      0.003,
			HeightSegments: 2,
		},
		Curve: CurveConfig{
			InsideStrength:  0.18,
			OutsideStrength: 0.05,
			TurningStrength: 0.09,
			Easing:          0.5,
			EasingFold:      0.3,
			Segments:        30,
			TurnDuration:    400 * time.Millisecond,
			CurveSplit:      8,
			FoldStart:       8,
			StackOffsetDeg:  0.8,
			FoldAngleDeg:    2,
			Damping:         "exponential",
		},
		Navigation: NavigationConfig{
			FastStep:    50 * time.Millisecond,
			SlowStep:    150 * time.Millisecond,
			FarDistance: 2,
		},
		Simulation: SimulationConfig{
			FPS:       60,
			Duration:  5 * time.Second,
			StartPage: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
