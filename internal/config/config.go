package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/tempus/internal/domain"
)

// DefaultDailyTarget is the daily target in hours used whenever no valid
// setting is stored.
const DefaultDailyTarget = 9.0

const (
	settingsFile = "settings.json"
	sessionsFile = "sessions.csv"
	timerFile    = "timer.json"
)

// Config locates the flat files tempus works with. The data directory
// defaults to ~/.tempus and is overridden by TEMPUS_DIR.
type Config struct {
	Dir string
}

// Load resolves the data directory from the environment.
func Load() (*Config, error) {
	dir := os.Getenv("TEMPUS_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".tempus")
	}
	return &Config{Dir: dir}, nil
}

// SessionsPath is the user-owned CSV session log. TEMPUS_SESSIONS points it
// at a file outside the data directory, e.g. one kept in a synced folder.
func (c *Config) SessionsPath() string {
	return domain.CoalesceStr(os.Getenv("TEMPUS_SESSIONS"), filepath.Join(c.Dir, sessionsFile))
}

// TimerPath is the running-timer state file.
func (c *Config) TimerPath() string {
	return filepath.Join(c.Dir, timerFile)
}

func (c *Config) settingsPath() string {
	return filepath.Join(c.Dir, settingsFile)
}

// settings is the persisted shape of settings.json.
type settings struct {
	DailyTargetHours float64 `json:"daily_target_hours"`
}

// DailyTarget returns the configured daily target hours. Loading never
// fails: a missing file, unreadable JSON, or a non-positive or non-finite
// stored value all fall back to the default. TEMPUS_TARGET overrides the
// file when it parses to a valid value.
func (c *Config) DailyTarget() float64 {
	target := DefaultDailyTarget

	data, err := os.ReadFile(c.settingsPath())
	if err == nil {
		var s settings
		if json.Unmarshal(data, &s) == nil && validTarget(s.DailyTargetHours) {
			target = s.DailyTargetHours
		}
	}

	if v := os.Getenv("TEMPUS_TARGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && validTarget(f) {
			target = f
		}
	}
	return target
}

// SetDailyTarget validates and persists a new daily target.
func (c *Config) SetDailyTarget(hours float64) error {
	if !validTarget(hours) {
		return fmt.Errorf("daily target must be a positive number of hours, got %v", hours)
	}
	if err := os.MkdirAll(c.Dir, 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(settings{DailyTargetHours: hours}, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}
	if err := os.WriteFile(c.settingsPath(), data, 0o600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

func validTarget(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
