package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Sheets configuration. Sheet ID, service account email and
	// private key are required together for recording bookings.
	GoogleSheetID             string `mapstructure:"GOOGLE_SHEET_ID"`
	GoogleServiceAccountEmail string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleSheetBookingTab     string `mapstructure:"GOOGLE_SHEET_BOOKING_TAB"`
	GoogleSheetTab            string `mapstructure:"GOOGLE_SHEET_TAB"`

	// Resend transactional email. The channel is active only when all
	// three values are present.
	ResendAPIKey     string `mapstructure:"RESEND_API_KEY"`
	BookingEmailFrom string `mapstructure:"BOOKING_EMAIL_FROM"`
	BookingEmailTo   string `mapstructure:"BOOKING_EMAIL_TO"`

	// WhatsApp Cloud API. Same rule: all three or the channel is skipped.
	WhatsAppToken         string `mapstructure:"WHATSAPP_TOKEN"`
	WhatsAppPhoneNumberID string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppTo            string `mapstructure:"WHATSAPP_TO"`

	// Public site values used for SEO endpoints and templated text.
	PublicSiteURL         string `mapstructure:"PUBLIC_SITE_URL"`
	SiteName              string `mapstructure:"SITE_NAME"`
	ThankYouPath          string `mapstructure:"THANK_YOU_PATH"`
	PublicWhatsAppNumber  string `mapstructure:"PUBLIC_WHATSAPP_NUMBER"`
	PublicWhatsAppMessage string `mapstructure:"PUBLIC_WHATSAPP_MESSAGE"`
	PublicWhatsAppLink    string `mapstructure:"PUBLIC_WHATSAPP_LINK"`

	// Timeout applied to every outbound provider call (Sheets, email,
	// WhatsApp), in seconds.
	OutboundTimeoutSeconds int `mapstructure:"OUTBOUND_TIMEOUT_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("PUBLIC_SITE_URL", "https://www.psicologiamedellin.co")
	viper.SetDefault("SITE_NAME", "Psicología Medellín")
	viper.SetDefault("THANK_YOU_PATH", "/gracias")
	viper.SetDefault("PUBLIC_WHATSAPP_NUMBER", "573000000000")
	viper.SetDefault("PUBLIC_WHATSAPP_MESSAGE",
		"Hola, me gustaría agendar una cita de valoración para psicología infantil o adolescente.")
	viper.SetDefault("OUTBOUND_TIMEOUT_SECONDS", 10)

	// Viper only unmarshals keys it knows about; the credential keys have no
	// meaningful default but must be registered so env-only deployments load
	// them.
	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEET_BOOKING_TAB", "")
	viper.SetDefault("GOOGLE_SHEET_TAB", "")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("BOOKING_EMAIL_FROM", "")
	viper.SetDefault("BOOKING_EMAIL_TO", "")
	viper.SetDefault("WHATSAPP_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_TO", "")
	viper.SetDefault("PUBLIC_WHATSAPP_LINK", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
