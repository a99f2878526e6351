package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Timer    TimerConfig    `yaml:"timer"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type TimerConfig struct {
	DefaultMinutes    int    `yaml:"default_minutes"`
	NotificationSound bool   `yaml:"notification_sound"`
	SoundFile         string `yaml:"sound_file"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
	FontSize int  `yaml:"font_size"`
}

func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Study Planner",
			Version:      "1.0.0",
			WindowWidth:  1000,
			WindowHeight: 700,
		},
		Database: DatabaseConfig{
			Path: "planner.db",
		},
		Timer: TimerConfig{
			DefaultMinutes:    25,
			NotificationSound: true,
			SoundFile:         "assets/session_complete.wav",
		},
		Theme: ThemeConfig{
			DarkMode: false,
			FontSize: 14,
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

func NewManager() (*Manager, error) {
	configDir, err := Dir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, "config.yaml")
	manager := &Manager{
		configPath: configPath,
	}

	// Fall back to defaults when no config file exists yet.
	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) UpdateTimerConfig(config TimerConfig) error {
	m.config.Timer = config
	return m.SaveConfig()
}

func (m *Manager) UpdateThemeConfig(config ThemeConfig) error {
	m.config.Theme = config
	return m.SaveConfig()
}

// Dir returns the per-user application directory, creating nothing.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".study-planner"), nil
}
