// Package config loads runtime settings from defaults, an optional YAML file,
// a .env file, DSATRACKER_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "DSATRACKER"
	ConfigName     = "dsatracker"
	DefaultEnvFile = ".env"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Clock    ClockConfig    `mapstructure:"clock"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

type CalendarConfig struct {
	WeekStart       string `mapstructure:"week_start"`
	StreakWalkLimit int    `mapstructure:"streak_walk_limit"`
	Timezone        string `mapstructure:"timezone"`
}

type ClockConfig struct {
	// Today pins the current day (YYYY-MM-DD). Empty uses the system clock.
	Today string `mapstructure:"today"`
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

type ReminderConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit YAML file. Empty searches ./ and ./config
	// for dsatracker.yaml and tolerates its absence.
	ConfigFile string
	// EnvFile is loaded into the process environment when it exists.
	// Empty means DefaultEnvFile.
	EnvFile string
	// Flags, when set, overrides matching keys for flags the user changed.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":  "app.log_level",
	"log-format": "app.log_format",
	"port":       "server.port",
	"week-start": "calendar.week_start",
	"timezone":   "calendar.timezone",
	"today":      "clock.today",
	"demo":       "seed.demo",
	"reminder":   "reminder.enabled",
}

func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("binding PORT: %w", err)
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in settings with no file, env or flag overrides.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "text")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("calendar.week_start", "sunday")
	v.SetDefault("calendar.streak_walk_limit", 365)
	v.SetDefault("calendar.timezone", "Local")

	v.SetDefault("clock.today", "")

	v.SetDefault("seed.demo", true)

	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.schedule", "0 20 * * *")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.App.LogLevel); !ok {
		return fmt.Errorf("app.log_level: unknown level %q", c.App.LogLevel)
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("app.log_format: want text or json, got %q", c.App.LogFormat)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d out of range", c.Server.Port)
	}
	if _, err := c.Calendar.WeekStartDay(); err != nil {
		return err
	}
	if c.Calendar.StreakWalkLimit < 1 {
		return fmt.Errorf("calendar.streak_walk_limit: must be at least 1, got %d", c.Calendar.StreakWalkLimit)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return err
	}
	if _, err := c.Clock.FixedToday(); err != nil {
		return err
	}
	if c.Reminder.Enabled && strings.TrimSpace(c.Reminder.Schedule) == "" {
		return errors.New("reminder.schedule: required when reminders are enabled")
	}
	return nil
}

// WeekStartDay parses week_start as an English weekday name.
func (c CalendarConfig) WeekStartDay() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.WeekStart))
	if name == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("calendar.week_start: unknown weekday %q", c.WeekStart)
}

// Location resolves the timezone. "Local" or empty means the host zone.
func (c CalendarConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone: %w", err)
	}
	return loc, nil
}

// FixedToday returns the pinned day, or nil when the system clock applies.
func (c ClockConfig) FixedToday() (*domain.Date, error) {
	if strings.TrimSpace(c.Today) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(c.Today))
	if err != nil {
		return nil, fmt.Errorf("clock.today: %w", err)
	}
	return &d, nil
}

// Now returns a clock for the configured settings. A pinned day keeps the
// real time of day so completion timestamps still order correctly.
func (c *Config) Now() (func() time.Time, error) {
	loc, err := c.Calendar.Location()
	if err != nil {
		return nil, err
	}
	fixed, err := c.Clock.FixedToday()
	if err != nil {
		return nil, err
	}
	if fixed == nil {
		return func() time.Time { return time.Now().In(loc) }, nil
	}
	day := *fixed
	return func() time.Time {
		now := time.Now().In(loc)
		return time.Date(day.Year(), day.Month(), day.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), loc)
	}, nil
}
