// Package config resolves quizme settings from, in increasing priority:
// a .env file, an optional YAML file, QUIZME_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix marks environment variables read as config keys.
// QUIZME_LOG_LEVEL maps to "log-level".
const EnvPrefix = "QUIZME_"

// Config keys, shared by flags, YAML files and environment variables.
const (
	KeyQuestions = "questions"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyLogFile   = "log-file"
	KeyHistory   = "history"
	KeyNoHistory = "no-history"
	KeyUI        = "ui"
)

// UI modes.
const (
	UIPlain = "plain"
	UITUI   = "tui"
)

// Config holds all settings for a quiz run.
type Config struct {
	Questions string `koanf:"questions" validate:"required"`
	LogLevel  string `koanf:"log-level" validate:"oneof=trace debug info warn error"`
	LogFormat string `koanf:"log-format" validate:"oneof=text json"`
	LogFile   string `koanf:"log-file"`

	// History is the sqlite file for the session log; empty means the
	// default data directory.
	History   string `koanf:"history"`
	NoHistory bool   `koanf:"no-history"`

	UI string `koanf:"ui" validate:"oneof=plain tui"`
}

// RegisterFlags adds the config flags with their defaults to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyQuestions, "f", "", "Path to the JSON question file")
	fs.String(KeyLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	fs.String(KeyLogFormat, "text", "Log format (text, json)")
	fs.String(KeyLogFile, "", "Write logs to this file instead of stderr")
	fs.String(KeyHistory, "", "Path to the session history database (env QUIZME_HISTORY; default under XDG_DATA_HOME)")
	fs.Bool(KeyNoHistory, false, "Do not record session history")
	fs.String(KeyUI, UIPlain, "User interface (plain, tui)")
}

// Load resolves the config. configPath names an optional YAML file; fs must
// have been set up with RegisterFlags. Flags left at their defaults never
// override file or environment values.
func Load(fs *pflag.FlagSet, configPath string) (*Config, error) {
	// A missing .env is fine; existing environment variables win.
	_ = godotenv.Load()

	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct constraints.
func Validate(cfg *Config) error {
	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the koanf key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// envKey maps QUIZME_LOG_LEVEL to log-level.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}
