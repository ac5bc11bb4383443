package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (workshop hours, timezone, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Workshop WorkshopConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type StoreConfig struct {
	Driver          string `envconfig:"STORE_DRIVER" default:"file"`
	Dir             string `envconfig:"STORE_DIR" default:"./data"`
	SQLitePath      string `envconfig:"STORE_SQLITE_PATH" default:"./data/repairshop.db"`
	CatalogSeedFile string `envconfig:"CATALOG_SEED_FILE"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// WorkshopConfig holds the slot grid hours and the flat labor charge.
type WorkshopConfig struct {
	MorningStart   int    `envconfig:"WORKSHOP_MORNING_START" default:"8"`
	MorningEnd     int    `envconfig:"WORKSHOP_MORNING_END" default:"12"`
	AfternoonStart int    `envconfig:"WORKSHOP_AFTERNOON_START" default:"14"`
	AfternoonEnd   int    `envconfig:"WORKSHOP_AFTERNOON_END" default:"18"`
	LaborCharge    string `envconfig:"WORKSHOP_LABOR_CHARGE" default:"150.00"`
	OrderIDs       string `envconfig:"WORKSHOP_ORDER_IDS" default:"sequence"`
}

const (
	OrderIDsSequence = "sequence"
	OrderIDsUUID     = "uuid"
)

const (
	NotifyDriverLog  = "log"
	NotifyDriverNATS = "nats"
)

type NotifyConfig struct {
	Driver  string `envconfig:"NOTIFY_DRIVER" default:"log"`
	NATSURL string `envconfig:"NOTIFY_NATS_URL" default:"nats://localhost:4222"`
	Subject string `envconfig:"NOTIFY_SUBJECT" default:"repairshop.orders"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c WorkshopConfig) Labor() (decimal.Decimal, error) {
	labor, err := decimal.NewFromString(c.LaborCharge)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid WORKSHOP_LABOR_CHARGE %q: %w", c.LaborCharge, err)
	}
	if labor.IsNegative() {
		return decimal.Zero, fmt.Errorf("WORKSHOP_LABOR_CHARGE must not be negative: %s", c.LaborCharge)
	}
	return labor, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadJWTConfig reads only the token settings, for commands that do not serve.
func LoadJWTConfig() (JWTConfig, error) {
	var cfg JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return JWTConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverFile,
			Dir:    "./testdata/store",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Workshop: WorkshopConfig{
			MorningStart:   8,
			MorningEnd:     12,
			AfternoonStart: 14,
			AfternoonEnd:   18,
			LaborCharge:    "150.00",
			OrderIDs:       OrderIDsSequence,
		},
		Notify: NotifyConfig{
			Driver:  NotifyDriverLog,
			Subject: "repairshop.orders",
		},
	}
}
