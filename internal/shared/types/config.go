package types

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source     string   `json:"source" yaml:"source" toml:"source"`
	Sheet      string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	Host       string   `json:"host" yaml:"host" toml:"host"`
	Port       int      `json:"port" yaml:"port" toml:"port"`
	Debug      bool     `json:"debug" yaml:"debug" toml:"debug"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion  string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	Seed       int64    `json:"seed" yaml:"seed" toml:"seed"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Environment variables read by ApplyEnv.
const (
	EnvSource     = "COST_DASHBOARD_SOURCE"
	EnvSheet      = "COST_DASHBOARD_SHEET"
	EnvHost       = "COST_DASHBOARD_HOST"
	EnvPort       = "COST_DASHBOARD_PORT"
	EnvDebug      = "COST_DASHBOARD_DEBUG"
	EnvAWSProfile = "AWS_PROFILE"
	EnvAWSRegion  = "AWS_REGION"
)

var validReportTypes = []string{"csv", "json", "pdf"}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Source:     "cleaned_final_combined_costs.xlsx",
		Host:       "0.0.0.0",
		Port:       8080,
		ReportName: "aws_cost_dashboard",
		ReportType: []string{"csv"},
	}
}

// Merge copia para c os campos não vazios de other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Source != "" {
		c.Source = other.Source
	}
	if other.Sheet != "" {
		c.Sheet = other.Sheet
	}
	if other.Host != "" {
		c.Host = other.Host
	}
	if other.Port != 0 {
		c.Port = other.Port
	}
	if other.Debug {
		c.Debug = true
	}
	if other.AWSProfile != "" {
		c.AWSProfile = other.AWSProfile
	}
	if other.AWSRegion != "" {
		c.AWSRegion = other.AWSRegion
	}
	if other.Seed != 0 {
		c.Seed = other.Seed
	}
	if other.ReportName != "" {
		c.ReportName = other.ReportName
	}
	if len(other.ReportType) > 0 {
		c.ReportType = other.ReportType
	}
	if other.Dir != "" {
		c.Dir = other.Dir
	}
}

// ApplyEnv overrides fields from environment variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSource); v != "" {
		c.Source = v
	}
	if v := getenv(EnvSheet); v != "" {
		c.Sheet = v
	}
	if v := getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': must be a number", EnvPort, v)
		}
		c.Port = port
	}
	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': must be a boolean", EnvDebug, v)
		}
		c.Debug = debug
	}
	if v := getenv(EnvAWSProfile); v != "" {
		c.AWSProfile = v
	}
	if v := getenv(EnvAWSRegion); v != "" {
		c.AWSRegion = v
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.Source) == "" {
		errors = append(errors, "source cannot be empty")
	}

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	for _, rt := range c.ReportType {
		valid := false
		for _, v := range validReportTypes {
			if strings.EqualFold(rt, v) {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid report type '%s': must be one of %v", rt, validReportTypes))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// Address returns host:port for the HTTP listener.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
