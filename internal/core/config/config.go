package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the usage counter store configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// LoadAPI holds the upstream load persistence API configuration.
	LoadAPI LoadAPIConfig `mapstructure:",squash"`

	// Billing holds the overage billing configuration.
	Billing BillingConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// LoadAPIConfig holds the credentials for the load persistence API.
type LoadAPIConfig struct {
	// URL is the base URL of the load API.
	URL string `mapstructure:"LOAD_API_URL" required:"true"`
	// Token is the bearer token sent on every request.
	Token string `mapstructure:"LOAD_API_TOKEN" required:"true"`
	// TimeoutSeconds bounds each outbound request.
	TimeoutSeconds int `mapstructure:"LOAD_API_TIMEOUT_SECONDS" default:"10"`
}

// BillingConfig holds plan and overage settings.
type BillingConfig struct {
	// DefaultTier is used for accounts without an explicit tier assignment.
	DefaultTier string `mapstructure:"BILLING_DEFAULT_TIER" default:"starter"`
	// AdminFee is the dollar amount added for overage, as a decimal string.
	AdminFee string `mapstructure:"BILLING_ADMIN_FEE" default:"25.00"`
	// AdminFeeMode is either per_resource or flat_monthly.
	AdminFeeMode string `mapstructure:"BILLING_ADMIN_FEE_MODE" default:"per_resource"`
}

// Load reads path/.env (optional) and the environment into an AppConfig.
// Environment variables win over the file; struct tag defaults fill the rest.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := registerKeys(v, &cfg); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// tagged is a leaf field of the config tree along with its tags.
type tagged struct {
	key      string
	def      string
	required bool
	value    reflect.Value
}

// walk visits every leaf field of the struct pointed to by ptr, descending into
// squashed sub-structs.
func walk(ptr any, visit func(tagged) error) error {
	val := reflect.ValueOf(ptr).Elem()
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() == reflect.Struct {
			if err := walk(val.Field(i).Addr().Interface(), visit); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		err := visit(tagged{
			key:      key,
			def:      field.Tag.Get("default"),
			required: field.Tag.Get("required") == "true",
			value:    val.Field(i),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// registerKeys binds every key to the environment and registers its default.
func registerKeys(v *viper.Viper, cfg *AppConfig) error {
	return walk(cfg, func(f tagged) error {
		if err := v.BindEnv(f.key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", f.key, err)
		}
		if f.def != "" {
			v.SetDefault(f.key, f.def)
		}
		return nil
	})
}

func (c *AppConfig) validate() error {
	var missing []string
	_ = walk(c, func(f tagged) error {
		if f.required && f.value.IsZero() {
			missing = append(missing, f.key)
		}
		return nil
	})
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort)
	}
	if u, err := url.Parse(c.LoadAPI.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("LOAD_API_URL is not an absolute URL: %q", c.LoadAPI.URL)
	}
	return nil
}
