package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	RenderBackendPDF    = "pdf"
	RenderBackendChrome = "chrome"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type DocumentsConfig struct {
	CompanyName       string
	CurrencyName      string
	ValidityDays      int
	PaymentDays       int
	QuotationTemplate string
	InvoiceTemplate   string
	LogoPath          string
	OutputDir         string
	InvoiceURLBase    string
}

type RenderConfig struct {
	Backend   string
	Timeout   time.Duration
	ChromeURL string
	NoSandbox bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	SSL      bool
	Username string
	Password string
	From     string
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Documents   DocumentsConfig
	Render      RenderConfig
	SMTP        SMTPConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SMTP_SSL", true)

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Documents: DocumentsConfig{
			CompanyName:       v.GetString("DOCS_COMPANY_NAME"),
			CurrencyName:      v.GetString("DOCS_CURRENCY_NAME"),
			ValidityDays:      v.GetInt("DOCS_VALIDITY_DAYS"),
			PaymentDays:       v.GetInt("DOCS_PAYMENT_DAYS"),
			QuotationTemplate: v.GetString("DOCS_QUOTATION_TEMPLATE"),
			InvoiceTemplate:   v.GetString("DOCS_INVOICE_TEMPLATE"),
			LogoPath:          v.GetString("DOCS_LOGO_PATH"),
			OutputDir:         v.GetString("DOCS_OUTPUT_DIR"),
			InvoiceURLBase:    v.GetString("DOCS_INVOICE_URL_BASE"),
		},
		Render: RenderConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString("RENDER_BACKEND"))),
			Timeout:   v.GetDuration("RENDER_TIMEOUT"),
			ChromeURL: v.GetString("RENDER_CHROME_URL"),
			NoSandbox: v.GetBool("RENDER_NO_SANDBOX"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			SSL:      v.GetBool("SMTP_SSL"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = DriverFromDSN(cfg.DB.DSN)
	}
	if cfg.Documents.CompanyName == "" {
		cfg.Documents.CompanyName = "CSPzone"
	}
	if cfg.Documents.CurrencyName == "" {
		cfg.Documents.CurrencyName = "UAE Dirhams"
	}
	if cfg.Documents.ValidityDays <= 0 {
		cfg.Documents.ValidityDays = 30
	}
	if cfg.Documents.PaymentDays <= 0 {
		cfg.Documents.PaymentDays = 30
	}
	if cfg.Documents.OutputDir == "" {
		cfg.Documents.OutputDir = "./output"
	}
	if cfg.Render.Backend == "" {
		cfg.Render.Backend = RenderBackendPDF
	}
	if cfg.Render.Timeout <= 0 {
		cfg.Render.Timeout = 30 * time.Second
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported", cfg.DB.Driver)
	}
	switch cfg.Render.Backend {
	case RenderBackendPDF, RenderBackendChrome:
	default:
		return fmt.Errorf("RENDER_BACKEND %q is not supported", cfg.Render.Backend)
	}
	return nil
}

// DriverFromDSN guesses the store driver from a DSN: URL or key=value
// PostgreSQL forms map to postgres, anything else is a SQLite file.
func DriverFromDSN(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") || strings.Contains(lower, "dbname=") {
		return DriverPostgres
	}
	return DriverSQLite
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
