package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds all configuration for the reception service
type ServerConfig struct {
	// Site Identity
	SiteID string

	// Server
	HTTPPort string

	// Database
	DatabaseHost string
	DatabasePort string
	DatabaseUser string
	DatabasePass string
	DatabaseName string

	// TUS upstream, e.g. "http://localhost:7000"
	TusEndpoint string
}

// TerminalConfig holds all configuration for a scanning terminal
type TerminalConfig struct {
	// Reception service endpoint, e.g. "http://localhost:6000"
	ServerEndpoint string
	OperatorID     string

	// Scan input
	QuietPeriod    time.Duration
	CameraCooldown time.Duration
	AutoReturn     time.Duration

	// Local scan journal
	JournalDir string
	JournalTTL time.Duration

	// Audio cues
	Mute bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadServerConfig loads service configuration from environment variables
// with defaults
func LoadServerConfig() *ServerConfig {
	v := newViper()
	v.SetDefault("SITE_ID", "site-a")
	v.SetDefault("HTTP_PORT", "6000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5433")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "postgrespassword")
	v.SetDefault("DB_NAME", "reception_db")
	v.SetDefault("TUS_ENDPOINT", "http://localhost:7000")

	return &ServerConfig{
		SiteID:       v.GetString("SITE_ID"),
		HTTPPort:     v.GetString("HTTP_PORT"),
		DatabaseHost: v.GetString("DB_HOST"),
		DatabasePort: v.GetString("DB_PORT"),
		DatabaseUser: v.GetString("DB_USER"),
		DatabasePass: v.GetString("DB_PASS"),
		DatabaseName: v.GetString("DB_NAME"),
		TusEndpoint:  v.GetString("TUS_ENDPOINT"),
	}
}

// GetDSN returns the PostgreSQL connection string
func (c *ServerConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePass,
		c.DatabaseName,
	)
}

// Validate checks if required configuration is present
func (c *ServerConfig) Validate() error {
	if c.SiteID == "" {
		return fmt.Errorf("SITE_ID is required")
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// LoadTerminalConfig loads terminal configuration from environment
// variables with defaults
func LoadTerminalConfig() *TerminalConfig {
	v := newViper()
	v.SetDefault("SERVER_ENDPOINT", "http://localhost:6000")
	v.SetDefault("OPERATOR_ID", "OPR-001")
	v.SetDefault("QUIET_PERIOD", "80ms")
	v.SetDefault("CAMERA_COOLDOWN", "3s")
	v.SetDefault("AUTO_RETURN", "2s")
	v.SetDefault("JOURNAL_DIR", "./scan-journal")
	v.SetDefault("JOURNAL_TTL", "168h")
	v.SetDefault("MUTE", false)

	return &TerminalConfig{
		ServerEndpoint: v.GetString("SERVER_ENDPOINT"),
		OperatorID:     v.GetString("OPERATOR_ID"),
		QuietPeriod:    v.GetDuration("QUIET_PERIOD"),
		CameraCooldown: v.GetDuration("CAMERA_COOLDOWN"),
		AutoReturn:     v.GetDuration("AUTO_RETURN"),
		JournalDir:     v.GetString("JOURNAL_DIR"),
		JournalTTL:     v.GetDuration("JOURNAL_TTL"),
		Mute:           v.GetBool("MUTE"),
	}
}

// Validate checks if required configuration is present
func (c *TerminalConfig) Validate() error {
	if c.ServerEndpoint == "" {
		return fmt.Errorf("SERVER_ENDPOINT is required")
	}
	if c.OperatorID == "" {
		return fmt.Errorf("OPERATOR_ID is required")
	}
	return nil
}
