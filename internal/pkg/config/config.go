package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Gateway   GatewayConfig
	AMQP      AMQPConfig
	Scheduler SchedulerConfig
	Migration MigrationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"10m"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"rental-core"`
}

// PricingConfig replaces the company settings row: it is passed explicitly to
// the order and invoice use cases.
type PricingConfig struct {
	TaxRate           float64 `envconfig:"TAX_RATE" default:"18"`
	LateFeePercentage float64 `envconfig:"LATE_FEE_PERCENTAGE" default:"5"`
	// Not used by the late fee formula, which is percentage based.
	LateFeePerDay    float64 `envconfig:"LATE_FEE_PER_DAY" default:"100"`
	InvoiceDueDays   int     `envconfig:"INVOICE_DUE_DAYS" default:"7"`
	InterStateSupply bool    `envconfig:"INTER_STATE_SUPPLY" default:"false"`
	Currency         string  `envconfig:"CURRENCY" default:"INR"`
}

type GatewayConfig struct {
	KeyID     string        `envconfig:"GATEWAY_KEY_ID"`
	KeySecret string        `envconfig:"GATEWAY_KEY_SECRET"`
	BaseURL   string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	Timeout   time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	// Sandbox skips the remote API and fabricates gateway ids locally.
	Sandbox bool `envconfig:"GATEWAY_SANDBOX" default:"true"`
}

type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_QUEUE" default:"rental_notifications"`
}

// Cron specs use the six-field format with seconds.
type SchedulerConfig struct {
	Enabled               bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	MarkOverdueRentals    string `envconfig:"CRON_MARK_OVERDUE" default:"0 */15 * * * *"`
	SendReturnReminders   string `envconfig:"CRON_RETURN_REMINDERS" default:"0 0 8 * * *"`
	DispatchNotifications string `envconfig:"CRON_DISPATCH_NOTIFICATIONS" default:"*/30 * * * * *"`
	ReminderWindowDays    int    `envconfig:"RETURN_REMINDER_WINDOW_DAYS" default:"1"`
	DispatchBatchSize     int    `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
}

type MigrationConfig struct {
	Enabled bool   `envconfig:"MIGRATE_ON_START" default:"false"`
	Dir     string `envconfig:"MIGRATION_DIR" default:"file://migrations"`
	Binary  string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "rental-core",
		},
		Pricing: PricingConfig{
			TaxRate:           18,
			LateFeePercentage: 5,
			LateFeePerDay:     100,
			InvoiceDueDays:    7,
			Currency:          "INR",
		},
		Gateway: GatewayConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "test-gateway-secret",
			Timeout:   time.Second,
			Sandbox:   true,
		},
		AMQP: AMQPConfig{
			Queue: "rental_notifications_test",
		},
		Scheduler: SchedulerConfig{
			Enabled:            false,
			ReminderWindowDays: 1,
			DispatchBatchSize:  10,
		},
	}
}
