package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// A missing .env file is normal
	_ = godotenv.Load()
}

// Environment variables that override the saved configuration for one run
const (
	EnvDataset  = "CLASSCTL_DATASET"
	EnvTimezone = "CLASSCTL_TIMEZONE"
	EnvLogLevel = "CLASSCTL_LOG_LEVEL"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DatasetPath string   `json:"dataset_path,omitempty"`
	DefaultRoom string   `json:"default_room,omitempty"`
	SavedRooms  []string `json:"saved_rooms,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	LogLevel    string   `json:"log_level,omitempty"`
	AccentColor string   `json:"accent_color,omitempty"`
}

// Path is where the settings live: ~/.classctl.json
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(home, ".classctl.json"), nil
}

// Load returns the saved settings. A first run has no file yet and gets zero values.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", path, err)
	}
	return cfg, nil
}

// Save persists cfg, replacing whatever was stored before.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// AbsDatasetPath makes a dataset path independent of the working directory it was typed in.
// The empty path selects the bundled timetable and is returned unchanged.
func AbsDatasetPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("could not resolve dataset path %q: %w", p, err)
	}
	return abs, nil
}

// RememberRoom adds room to the saved rooms unless it is empty or already there.
func (cfg *AppConfig) RememberRoom(room string) {
	if room == "" {
		return
	}
	for _, r := range cfg.SavedRooms {
		if r == room {
			return
		}
	}
	cfg.SavedRooms = append(cfg.SavedRooms, room)
}

// WithEnv returns a copy of cfg with CLASSCTL_* environment overrides applied.
// The copy is meant for the current run and should not be saved.
func (cfg *AppConfig) WithEnv() *AppConfig {
	out := *cfg
	if v := os.Getenv(EnvDataset); v != "" {
		out.DatasetPath = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		out.Timezone = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		out.LogLevel = v
	}
	return &out
}

// Location resolves the configured timezone, falling back to the machine's local zone.
func (cfg *AppConfig) Location() (*time.Location, error) {
	if cfg.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}
