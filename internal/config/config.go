// Package config resolves rendercv settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DetailsEnv is the environment variable that turns on the details section
// when set to "y".
const DetailsEnv = "cv_details"

// EnvPrefix prefixes environment overrides such as RENDERCV_LANG.
const EnvPrefix = "RENDERCV"

// Config key names shared by flags, env and the config file.
const (
	KeyLang           = "lang"
	KeyDetails        = "details"
	KeyDataDir        = "data_dir"
	KeyTemplateDir    = "template_dir"
	KeyTranslationDir = "translation_dir"
	KeyTemplate       = "template"
	KeySchema         = "schema"
	KeyStrict         = "strict"
	KeyLangs          = "langs"
	KeyOutDir         = "out_dir"
)

// Config represents the resolved rendercv settings.
type Config struct {
	Lang           string   `mapstructure:"lang" validate:"required,bcp47_language_tag"`
	Details        bool     `mapstructure:"details"`
	DataDir        string   `mapstructure:"data_dir" validate:"required"`
	TemplateDir    string   `mapstructure:"template_dir" validate:"required"`
	TranslationDir string   `mapstructure:"translation_dir" validate:"required"`
	Template       string   `mapstructure:"template" validate:"required"`
	Schema         string   `mapstructure:"schema"`
	Strict         bool     `mapstructure:"strict"`
	Langs          []string `mapstructure:"langs" validate:"dive,bcp47_language_tag"`
	OutDir         string   `mapstructure:"out_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lang:           "en",
		Details:        DetailsFromEnv(),
		DataDir:        "data",
		TemplateDir:    "templates",
		TranslationDir: "translations",
		Template:       "cv.moderncv.tex.j2",
		Langs:          []string{"en", "de"},
		OutDir:         "out",
	}
}

// DetailsFromEnv reports whether cv_details is set to "y".
func DetailsFromEnv() bool {
	return os.Getenv(DetailsEnv) == "y"
}

// SetDefaults registers Default() values on v. Call it after .env files
// have been loaded so DetailsFromEnv sees them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLang, d.Lang)
	v.SetDefault(KeyDetails, d.Details)
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyTemplateDir, d.TemplateDir)
	v.SetDefault(KeyTranslationDir, d.TranslationDir)
	v.SetDefault(KeyTemplate, d.Template)
	v.SetDefault(KeySchema, d.Schema)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyLangs, d.Langs)
	v.SetDefault(KeyOutDir, d.OutDir)
}

// Setup points v at the config file and environment. An explicit cfgFile
// wins; otherwise rendercv.yaml is searched in the working directory and
// the user config directory.
func Setup(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("rendercv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rendercv"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
}

// ReadFile reads the config file if there is one. A missing file is not an
// error unless it was named explicitly.
func ReadFile(v *viper.Viper, explicit bool) (bool, error) {
	err := v.ReadInConfig()
	if err == nil {
		return true, nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && errors.As(err, &notFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to read config file: %w", err)
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
