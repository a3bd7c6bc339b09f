package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	RendererAddress       string
	ArtifactStoreAddress  string
	ArtifactPublicBaseURL string
	AdminToken            string
	AdminTokenHash        string
	SMTPAddress           string
	SMTPUsername          string
	SMTPPassword          string
	EmailFrom             string
	BankAccount           string
	AdminWhatsApp         string
	DefaultTemplate       string
	WorkerPoolSize        int
	QueueSize             int
	FulfillMaxAttempts    int
	FulfillRetryBackoff   time.Duration
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultAdminToken          = "change-me-in-production"
	defaultEmailFrom           = "AngoHire Team <noreply@angohire.com>"
	defaultBankAccount         = "005100002786460610174"
	defaultAdminWhatsApp       = "+244945625060"
	defaultTemplate            = "modern-professional"
	defaultWorkerPoolSize      = 4
	defaultQueueSize           = 64
	defaultFulfillMaxAttempts  = 3
	defaultFulfillRetryBackoff = 2 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		RendererAddress:       getString(lookup, "RENDERER_ADDRESS", ""),
		ArtifactStoreAddress:  getString(lookup, "ARTIFACT_STORE_ADDRESS", ""),
		ArtifactPublicBaseURL: getString(lookup, "ARTIFACT_PUBLIC_BASE_URL", ""),
		AdminToken:            getString(lookup, "ADMIN_TOKEN", defaultAdminToken),
		AdminTokenHash:        getString(lookup, "ADMIN_TOKEN_HASH", ""),
		SMTPAddress:           getString(lookup, "SMTP_ADDRESS", ""),
		SMTPUsername:          getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:          getString(lookup, "SMTP_PASSWORD", ""),
		EmailFrom:             getString(lookup, "EMAIL_FROM", defaultEmailFrom),
		BankAccount:           getString(lookup, "BANK_ACCOUNT", defaultBankAccount),
		AdminWhatsApp:         getString(lookup, "ADMIN_WHATSAPP", defaultAdminWhatsApp),
		DefaultTemplate:       getString(lookup, "DEFAULT_TEMPLATE", defaultTemplate),
		WorkerPoolSize:        getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		QueueSize:             getInt(lookup, "FULFILL_QUEUE_SIZE", defaultQueueSize),
		FulfillMaxAttempts:    getInt(lookup, "FULFILL_MAX_ATTEMPTS", defaultFulfillMaxAttempts),
		FulfillRetryBackoff:   getDuration(lookup, "FULFILL_RETRY_BACKOFF", defaultFulfillRetryBackoff),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("angohire", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		retryBackoffStr    = cfg.FulfillRetryBackoff.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RendererAddress, "r", cfg.RendererAddress, "Document renderer base URL")
	fs.StringVar(&cfg.ArtifactStoreAddress, "s", cfg.ArtifactStoreAddress, "Artifact store base URL")
	fs.StringVar(&cfg.AdminToken, "admin-token", cfg.AdminToken, "Shared administrative token")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent fulfillment workers")
	fs.IntVar(&cfg.QueueSize, "queue-size", cfg.QueueSize, "Capacity of the fulfillment queue")
	fs.IntVar(&cfg.FulfillMaxAttempts, "fulfill-attempts", cfg.FulfillMaxAttempts, "Fulfillment attempts before marking an order failed")
	fs.StringVar(&retryBackoffStr, "retry-backoff", retryBackoffStr, "Delay between fulfillment retries")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.FulfillRetryBackoff, err = time.ParseDuration(retryBackoffStr); err != nil {
		return nil, fmt.Errorf("invalid retry backoff: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if tokenFile, ok := lookup("ADMIN_TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read admin token file: %w", err)
		}
		cfg.AdminToken = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	if cfg.FulfillMaxAttempts <= 0 {
		cfg.FulfillMaxAttempts = defaultFulfillMaxAttempts
	}

	if cfg.FulfillRetryBackoff <= 0 {
		cfg.FulfillRetryBackoff = defaultFulfillRetryBackoff
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RendererAddress == "" {
		return nil, fmt.Errorf("renderer address must be provided")
	}

	if cfg.ArtifactStoreAddress == "" {
		return nil, fmt.Errorf("artifact store address must be provided")
	}

	if cfg.ArtifactPublicBaseURL == "" {
		cfg.ArtifactPublicBaseURL = cfg.ArtifactStoreAddress
	}

	if cfg.AdminToken == "" && cfg.AdminTokenHash == "" {
		return nil, fmt.Errorf("admin token must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
