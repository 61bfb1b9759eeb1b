package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

// Environment wins over flags. Optional values disable their feature when
// absent: no ADMIN_DASH_TOKEN means the admin gate fails open, missing
// Twilio credentials disable notifications, no REGISTRATION_CODE disables
// account registration, no SESSION_SECRET disables session tokens.
type ServerConfig struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	DatabaseDSN       string `env:"DATABASE_URI"`
	AdminToken        string `env:"ADMIN_DASH_TOKEN"`
	RegistrationCode  string `env:"REGISTRATION_CODE"`
	SessionSecret     string `env:"SESSION_SECRET"`
	SessionTTLSeconds int    `env:"SESSION_TTL_SECONDS" envDefault:"43200"`

	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM"`
	TwilioWhatsAppTo   string `env:"TWILIO_WHATSAPP_TO"`
}

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flag.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/bccargo?sslmode=disable", "Database DSN")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}

	return &params, nil
}

// NotificationsConfigured reports whether every outbound-messaging
// credential is present. A partial set counts as disabled, not an error.
func (c *ServerConfig) NotificationsConfigured() bool {
	return c.TwilioAccountSID != "" &&
		c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppFrom != "" &&
		c.TwilioWhatsAppTo != ""
}
