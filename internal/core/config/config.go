package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

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
	// RequestTimeoutSeconds bounds a whole /track resolution across all backends.
	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS" default:"20"`

	// Backends holds the text-generation backend credentials and policy.
	Backends BackendsConfig `mapstructure:",squash"`

	// Cache holds the optional Redis cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy used for backend calls.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// BackendsConfig holds the credentials for the AI search backends.
// An empty API key means the backend is not configured and is never attempted.
type BackendsConfig struct {
	PerplexityAPIKey string `mapstructure:"PERPLEXITY_API_KEY"`
	PerplexityURL    string `mapstructure:"PERPLEXITY_URL" default:"https://api.perplexity.ai"`
	PerplexityModel  string `mapstructure:"PERPLEXITY_MODEL" default:"sonar-pro"`

	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	OpenAIURL    string `mapstructure:"OPENAI_URL" default:"https://api.openai.com/v1"`
	OpenAIModel  string `mapstructure:"OPENAI_MODEL" default:"gpt-4o"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL" default:"gemini-2.0-flash"`

	// Order is the comma separated priority list of backend names.
	Order string `mapstructure:"BACKEND_ORDER" default:"perplexity,openai,gemini"`
	// TimeoutSeconds bounds each individual backend call.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"8"`
}

// CacheConfig holds the Redis connection used for record and offer caching.
type CacheConfig struct {
	// RedisURL is optional; when empty no caching is performed.
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTLSeconds is the lifetime of a cached tracking record.
	TTLSeconds int `mapstructure:"CACHE_TTL_SECONDS" default:"300"`
}

// ProxyConfig holds the outbound proxy for backend HTTP calls.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Host     string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USER"`
	Password string `mapstructure:"PROXY_PASS"`
}

// RequestTimeout returns the overall deadline for one tracking request.
func (c AppConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// BackendOrder returns the normalized backend priority list.
func (b BackendsConfig) BackendOrder() []string {
	var order []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(b.Order, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	return order
}

// Timeout returns the per-backend call bound.
func (b BackendsConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 8 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// TTL returns the cached record lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			key := field.Tag.Get("mapstructure")
			return fmt.Errorf("missing required configuration: %s", key)
		}
	}
	return nil
}
