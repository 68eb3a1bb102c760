package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the upstream status page, the poller and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"snowstat" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Statuspage configures the upstream status page API client.
	Statuspage struct {
		// BaseURL is the root of the upstream Statuspage v2 API
		BaseURL string `env:"STATUSPAGE_BASE_URL" env-default:"https://status.snowflake.com/api/v2" yaml:"baseUrl"`
		// Timeout bounds a single upstream API request
		Timeout time.Duration `env:"STATUSPAGE_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// CacheTTL is how long a stored snapshot is served before a fresh fetch is attempted
		CacheTTL time.Duration `env:"STATUSPAGE_CACHE_TTL" env-default:"1m" yaml:"cacheTtl"`
		// IncidentWindow is how far back resolved incidents are reported
		IncidentWindow time.Duration `env:"STATUSPAGE_INCIDENT_WINDOW" env-default:"720h" yaml:"incidentWindow"`
	} `yaml:"statuspage"`

	// Poller configures the background polling job.
	Poller struct {
		// Interval is how often the periodic poll job runs
		Interval time.Duration `env:"POLLER_INTERVAL" env-default:"5m" yaml:"interval"`
		// MaxAttempts is how many times a failed poll job is retried
		MaxAttempts int `env:"POLLER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// SnapshotRetention is how long stored snapshots are kept before pruning
		SnapshotRetention time.Duration `env:"POLLER_SNAPSHOT_RETENTION" env-default:"2160h" yaml:"snapshotRetention"`
		// MaxWorkers limits concurrent job execution
		MaxWorkers int `env:"POLLER_MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`
	} `yaml:"poller"`

	// Matrix configures the cloud/region/service matrix rendering.
	Matrix struct {
		// ServicesFile is an optional YAML file listing the canonical service
		// ordering. When empty, services are ordered alphabetically.
		ServicesFile string `env:"MATRIX_SERVICES_FILE" env-default:"" yaml:"servicesFile"`
	} `yaml:"matrix"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
