package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPAddr string
	Timezone string

	BusinessName string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	GoogleServiceAccountJSON string
	GoogleCalendarID         string
	CalendarSyncInterval     time.Duration

	WebhookURL     string
	WebhookTimeout time.Duration

	PayFastMerchantID  string
	PayFastMerchantKey string
	PayFastPassphrase  string
	PayFastProcessURL  string
	PayFastReturnURL   string
	PayFastCancelURL   string
	PayFastNotifyURL   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	NotifyEmail  string
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:   getenv("APP_ENV", "production"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		Timezone: getenv("TIMEZONE", "Africa/Johannesburg"),

		BusinessName: getenv("BUSINESS_NAME", "Spit Braai Catering"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "catering_booking"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", ""),

		GoogleServiceAccountJSON: getenv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleCalendarID:         getenv("GOOGLE_CALENDAR_ID", ""),
		CalendarSyncInterval:     getduration("CALENDAR_SYNC_INTERVAL", 5*time.Minute),

		WebhookURL:     getenv("WEBHOOK_URL", ""),
		WebhookTimeout: getduration("WEBHOOK_TIMEOUT", 10*time.Second),

		PayFastMerchantID:  getenv("PAYFAST_MERCHANT_ID", ""),
		PayFastMerchantKey: getenv("PAYFAST_MERCHANT_KEY", ""),
		PayFastPassphrase:  getenv("PAYFAST_PASSPHRASE", ""),
		PayFastProcessURL:  getenv("PAYFAST_PROCESS_URL", "https://sandbox.payfast.co.za/eng/process"),
		PayFastReturnURL:   getenv("PAYFAST_RETURN_URL", ""),
		PayFastCancelURL:   getenv("PAYFAST_CANCEL_URL", ""),
		PayFastNotifyURL:   getenv("PAYFAST_NOTIFY_URL", ""),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getint("SMTP_PORT", 587),
		SMTPUser:     getenv("SMTP_USER", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", ""),
		NotifyEmail:  getenv("NOTIFY_EMAIL", ""),
	}
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("SAST", 2*3600)
	}
	return loc
}

func (c Config) Development() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	n, err := strconv.Atoi(getenv(k, ""))
	if err != nil {
		return def
	}
	return n
}

func getduration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(k, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
