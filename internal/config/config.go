package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "21:00"
	Workdays []string `mapstructure:"workdays"` // days the reminder fires; all seven by default
	Holidays []string `mapstructure:"holidays"` // ["2026-01-01"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
}

type Config struct {
	Language string         `mapstructure:"language"` // "en" or "ar"
	DataDir  string         `mapstructure:"data_dir"`
	AI       AIConfig       `mapstructure:"ai"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		Language: "en",
		DataDir:  "",
		AI: AIConfig{
			APIKey: "",
			Model:  "gemini-3-flash-preview",
		},
		Reminder: ReminderConfig{
			Enabled:  true,
			Time:     "21:00",
			Workdays: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "oneline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("ONELINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("language", cfg.Language)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("ai.api_key", cfg.AI.APIKey)
	v.SetDefault("ai.model", cfg.AI.Model)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Language != "ar" {
		cfg.Language = "en"
	}

	// normalize workdays to "Sun".."Sat"
	for i, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			cfg.Reminder.Workdays[i] = strings.ToUpper(d[:1]) + strings.ToLower(d[1:3])
		}
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
