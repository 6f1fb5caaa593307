package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name" default:"deviation-check"`
	Env     string `mapstructure:"env" default:"local"`
	Version string `mapstructure:"version" default:"dev"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Encoding string `mapstructure:"encoding" default:"console" validate:"oneof=console json"`
}

var validate = validator.New()

// Load loads configuration from a file into the given config struct.
// Struct tag defaults are applied first, so keys absent from the file keep them.
// envKeys are bound explicitly so they can be set from the environment without
// appearing in the file (e.g. "checker.input_path" -> CHECKER_INPUT_PATH).
func Load(path string, config interface{}, envKeys ...string) error {
	if err := defaults.Set(config); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			log.Println("Config file not found, falling back to defaults and environment variables")
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return Validate(config)
}

// Validate checks the validate struct tags of the given config.
func Validate(config interface{}) error {
	if err := validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
