package onesignal

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config identifies the OneSignal app and holds its credentials.
type Config struct {
	AppID       string `env:"ONESIGNAL_APP_ID" yaml:"app_id" validate:"required"`
	RESTAPIKey  string `env:"ONESIGNAL_REST_API_KEY" yaml:"rest_api_key" validate:"required"`
	UserAuthKey string `env:"ONESIGNAL_USER_AUTH_KEY" yaml:"user_auth_key"`
}

var (
	// ErrInvalidConfig is returned when a required Config field is missing.
	ErrInvalidConfig = errors.New("invalid onesignal config")

	// ErrConfigNotFound is returned when a config file has no onesignal block.
	ErrConfigNotFound = errors.New("onesignal config block not found")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				missing = append(missing, fe.Field())
			}
			return fmt.Errorf("%w: missing %v", ErrInvalidConfig, missing)
		}
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfigFromEnv reads the ONESIGNAL_* environment variables. Values from a
// .env file in the working directory are loaded first when the file exists;
// variables already set in the environment take precedence.
func LoadConfigFromEnv() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type configFile struct {
	Services struct {
		OneSignal *Config `yaml:"onesignal"`
	} `yaml:"services"`
	OneSignal *Config `yaml:"onesignal"`
}

// LoadConfigFile reads a YAML file. The services.onesignal block is used when
// present, otherwise the top level onesignal block.
//
//	services:
//	  onesignal:
//	    app_id: ...
//	    rest_api_key: ...
//	    user_auth_key: ...
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(raw)
}

// ParseConfig is LoadConfigFile for an in-memory document.
func ParseConfig(raw []byte) (Config, error) {
	var file configFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := file.Services.OneSignal
	if cfg == nil {
		cfg = file.OneSignal
	}
	if cfg == nil {
		return Config{}, ErrConfigNotFound
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return *cfg, nil
}
