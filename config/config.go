// Package config provides configuration types, defaults and loading for smarty.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/viant/smarty/model/project"
)

// EnvPrefix prefixes environment overrides, e.g. SMARTY_LOG_LEVEL
const EnvPrefix = "SMARTY"

// Config holds all configuration options
type Config struct {
	Project  ProjectConfig     `mapstructure:"project"`
	Log      LogConfig         `mapstructure:"log"`
	Generate GenerateConfig    `mapstructure:"generate"`
	Profile  map[string]string `mapstructure:"profile"` // role -> tag name
}

// ProjectConfig holds defaults of newly created projects
type ProjectConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LogConfig holds logging options
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// GenerateConfig holds code generation options
type GenerateConfig struct {
	Output   string `mapstructure:"output"`
	Validate bool   `mapstructure:"validate"`
}

// Defaults returns the default configuration
func Defaults() Config {
	return Config{
		Project:  ProjectConfig{Name: "New Project", Version: "1.0"},
		Log:      LogConfig{Level: "info", Format: "text"},
		Generate: GenerateConfig{Output: "src", Validate: true},
	}
}

// SetDefaults registers defaults with viper
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("project.name", defaults.Project.Name)
	v.SetDefault("project.version", defaults.Project.Version)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("generate.output", defaults.Generate.Output)
	v.SetDefault("generate.validate", defaults.Generate.Validate)
}

// Load reads configuration from file, or smarty.yaml in the working directory when file is empty.
// A missing default file is not an error; environment variables override file values.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("smarty")
		v.SetConfigType("yaml")
	}
	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Options returns project options for newly created projects
func (c *Config) Options() []project.Option {
	var ret []project.Option
	if c.Project.Name != "" {
		ret = append(ret, project.WithName(c.Project.Name))
	}
	if c.Project.Version != "" {
		ret = append(ret, project.WithVersion(c.Project.Version))
	}
	return ret
}

// Apply rebinds profile roles to the tags named in the configuration
func (c *Config) Apply(aProject *project.Project) error {
	roles := make([]string, 0, len(c.Profile))
	for role := range c.Profile {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, name := range roles {
		role, ok := lookupRole(name)
		if !ok {
			return fmt.Errorf("profile role %v: %w", name, project.ErrUnknownReference)
		}
		tag, ok := aProject.TagByName(c.Profile[name])
		if !ok {
			return fmt.Errorf("profile %v tag %v: %w", name, c.Profile[name], project.ErrUnknownReference)
		}
		aProject.Profile.Bind(role, tag.ID)
	}
	return nil
}

// viper lowercases keys, roles match case-insensitively
func lookupRole(name string) (project.Role, bool) {
	for _, role := range project.Roles {
		if strings.EqualFold(string(role), name) {
			return role, true
		}
	}
	return "", false
}

// Logger creates slog logger writing to w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	options := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}
