package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TransportMode selects how the outbound call is performed
type TransportMode string

const (
	// TransportStandard inspects the response status; non-2xx is a failure
	TransportStandard TransportMode = "standard"
	// TransportOpaque never inspects the response; any completed call is a success
	TransportOpaque TransportMode = "opaque"
	// TransportSimulated performs no network call at all
	TransportSimulated TransportMode = "simulated"
)

type Config struct {
	EndpointURL     string        `json:"endpoint_url" yaml:"endpoint_url" env:"DISPATCH_ENDPOINT_URL" validate:"omitempty,url"`
	TransportMode   TransportMode `json:"transport_mode" yaml:"transport_mode" env:"DISPATCH_TRANSPORT_MODE" validate:"required,oneof=standard opaque simulated"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout" env:"DISPATCH_TIMEOUT" validate:"gt=0"`
	Source          string        `json:"source" yaml:"source" env:"DISPATCH_SOURCE" validate:"required"`
	Format          string        `json:"format" yaml:"format" env:"DISPATCH_FORMAT" validate:"required"`
	LogLevel        string        `json:"log_level" yaml:"log_level" env:"DISPATCH_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile         string        `json:"log_file" yaml:"log_file" env:"DISPATCH_LOG_FILE"`
	SimulatedDelay  time.Duration `json:"simulated_delay" yaml:"simulated_delay" env:"DISPATCH_SIMULATED_DELAY" validate:"gte=0"`
	SimulateFailure bool          `json:"simulate_failure" yaml:"simulate_failure" env:"DISPATCH_SIMULATE_FAILURE"`
}

var DefaultConfig = Config{
	TransportMode:  TransportStandard,
	Timeout:        10 * time.Second,
	Source:         "web_app",
	Format:         "text",
	LogLevel:       "info",
	SimulatedDelay: time.Second,
}

var validate = validator.New()

// Validate fills unset fields from DefaultConfig and checks the result
func (c *Config) Validate() error {
	c.TransportMode = TransportMode(strings.ToLower(strings.TrimSpace(string(c.TransportMode))))
	if c.TransportMode == "" {
		c.TransportMode = DefaultConfig.TransportMode
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultConfig.Timeout
	}

	if c.Source == "" {
		c.Source = DefaultConfig.Source
	}

	if c.Format == "" {
		c.Format = DefaultConfig.Format
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}

	if c.SimulatedDelay < 0 {
		c.SimulatedDelay = DefaultConfig.SimulatedDelay
	}

	if c.TransportMode != TransportSimulated && c.EndpointURL == "" {
		return &ConfigError{Field: "endpoint_url", Message: "endpoint URL is required for " + string(c.TransportMode) + " transport"}
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ConfigError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on '%s' (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
