package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	API            APIConfig
	Session        SessionConfig
	ClientToken    ClientTokenConfig
	Security       SecurityConfig
	CircuitBreaker CircuitBreakerConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// DatabaseConfig selects where the per-client credential store lives.
// Driver is "sqlite" (default, SQLitePath) or "postgres" (Host/Port/...).
type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// APIConfig points at the remote finance API. A zero Timeout disables the
// client-side timeout and leaves latency bounded by the remote side.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName    string
	CookieTTL     time.Duration
	CookieSecure  bool
	EncryptionKey [32]byte
	RedirectDelay time.Duration
	ViewTTL       time.Duration
	ViewCacheSize int
}

type ClientTokenConfig struct {
	PrivateKey *rsa.PrivateKey
	PublicKey  *rsa.PublicKey
	Issuer     string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			SQLitePath:      getEnv("SQLITE_PATH", "./data/sessions.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "expense_web"),
			Password:        getEnv("DB_PASSWORD", "expense_web"),
			Name:            getEnv("DB_NAME", "expense_web"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3000"), "/"),
			Timeout: getDurationEnv("API_TIMEOUT", 0),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "client"),
			CookieTTL:     getDurationEnv("SESSION_COOKIE_TTL", 30*24*time.Hour),
			CookieSecure:  getBoolEnv("SESSION_COOKIE_SECURE", false),
			RedirectDelay: getDurationEnv("SESSION_REDIRECT_DELAY", time.Second),
			ViewTTL:       getDurationEnv("VIEW_TTL", 15*time.Minute),
			ViewCacheSize: getIntEnv("VIEW_CACHE_SIZE", 1000),
		},
		ClientToken: ClientTokenConfig{
			Issuer: getEnv("CLIENT_TOKEN_ISSUER", "expense-tracker-web"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:     getIntEnv("CB_MAX_FAILURES", 5),
			ResetTimeout:    getDurationEnv("CB_RESET_TIMEOUT", 30*time.Second),
			HalfOpenMaxSucc: getIntEnv("CB_HALF_OPEN_MAX_SUCCESS", 3),
		},
	}

	key, err := config.loadEncryptionKey()
	if err != nil {
		return nil, err
	}
	config.Session.EncryptionKey = key

	config.ClientToken.PrivateKey, config.ClientToken.PublicKey, err = config.loadClientTokenKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid SERVER_PORT %q", c.Server.Port))
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when DB_DRIVER=sqlite")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required when DB_DRIVER=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER %q: must be sqlite or postgres", c.Database.Driver))
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API_BASE_URL %q", c.API.BaseURL))
	}
	if c.API.Timeout < 0 {
		problems = append(problems, "API_TIMEOUT cannot be negative")
	}

	if c.Session.CookieName == "" {
		problems = append(problems, "SESSION_COOKIE_NAME cannot be empty")
	}
	if c.Session.RedirectDelay < 0 || c.Session.RedirectDelay > 10*time.Second {
		problems = append(problems, fmt.Sprintf("invalid SESSION_REDIRECT_DELAY %v: must be between 0 and 10s", c.Session.RedirectDelay))
	}
	if c.Session.ViewCacheSize < 1 {
		problems = append(problems, "VIEW_CACHE_SIZE must be at least 1")
	}

	if c.Security.RateLimitPerSecond < 1 || c.Security.RateLimitBurst < 1 {
		problems = append(problems, "rate limit settings must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the lib/pq connection string used by the migration runner.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadEncryptionKey reads SESSION_ENCRYPTION_KEY (base64, 32 bytes).
// Outside production a random key is generated, which invalidates stored
// credentials on restart.
func (c *Config) loadEncryptionKey() ([32]byte, error) {
	var key [32]byte

	encoded := os.Getenv("SESSION_ENCRYPTION_KEY")
	if encoded == "" {
		if c.IsProduction() {
			return key, errors.New("SESSION_ENCRYPTION_KEY must be set in production environments")
		}
		slog.Warn("SESSION_ENCRYPTION_KEY not set, generating an ephemeral key")
		if _, err := rand.Read(key[:]); err != nil {
			return key, fmt.Errorf("failed to generate session encryption key: %w", err)
		}
		return key, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return key, fmt.Errorf("failed to decode SESSION_ENCRYPTION_KEY: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("SESSION_ENCRYPTION_KEY must decode to %d bytes, got %d", len(key), len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// loadClientTokenKeys loads the RSA keypair that signs client cookies.
// Priority order:
// 1. CLIENT_TOKEN_PRIVATE_KEY and CLIENT_TOKEN_PUBLIC_KEY env vars (base64 PEM)
// 2. production without env vars fails
// 3. otherwise a fresh keypair is generated
func (c *Config) loadClientTokenKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("CLIENT_TOKEN_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("CLIENT_TOKEN_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		return loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("CLIENT_TOKEN_PRIVATE_KEY and CLIENT_TOKEN_PUBLIC_KEY environment variables must be set in production environments")
	}

	slog.Info("Generating RSA keypair for client cookies; set CLIENT_TOKEN_PRIVATE_KEY and CLIENT_TOKEN_PUBLIC_KEY to keep clients across restarts")
	return GenerateRSAKeyPair()
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode CLIENT_TOKEN_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode CLIENT_TOKEN_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return privateKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaPublicKey, nil
}
