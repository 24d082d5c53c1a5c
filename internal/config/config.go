package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// FFmpeg settings
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`

	// Subtitle appearance defaults
	Subtitles SubtitleConfig `yaml:"subtitles"`

	// Encode defaults
	DefaultMode string `yaml:"default_mode"`
	OutputDir   string `yaml:"output_dir"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type SubtitleConfig struct {
	FontName         string `yaml:"font_name"`
	FontSize         int    `yaml:"font_size"`
	OutlineWidth     int    `yaml:"outline_width"`
	ShadowDepth      int    `yaml:"shadow_depth"`
	EnglishMargin    int    `yaml:"english_margin"`
	VietnameseMargin int    `yaml:"vietnamese_margin"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		FFmpeg: FFmpegConfig{
			BinaryPath: "",
		},
		Subtitles: SubtitleConfig{
			FontName:         "Arial",
			FontSize:         24,
			OutlineWidth:     2,
			ShadowDepth:      1,
			EnglishMargin:    60,
			VietnameseMargin: 24,
		},
		DefaultMode: "smaller",
		OutputDir:   home,
	}
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.yml",
		filepath.Join(os.Getenv("HOME"), ".dualsub", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
