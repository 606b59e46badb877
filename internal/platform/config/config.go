package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Balance cache backends selectable via BALANCE_BACKEND.
const (
	BalanceBackendMemory   = "memory"
	BalanceBackendPostgres = "postgres"
	BalanceBackendRedis    = "redis"
)

// Rate update conflict policies selectable via RATE_CONFLICT_POLICY.
const (
	RatePolicyLastWrite       = "last_write"
	RatePolicyWeightedAverage = "weighted_average"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Redis connection, used when BalanceBackend is "redis".
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// BalanceBackend selects the balance cache store: memory, postgres or redis.
	BalanceBackend string

	// RateConflictPolicy resolves several explicit rates for the same
	// currency inside one posting: last_write or weighted_average.
	RateConflictPolicy string

	// FxTTLMaxScan caps how many audit events one TTL plan may consider.
	FxTTLMaxScan int

	// RateLimitRPS is the per-IP request rate limit.
	RateLimitRPS int

	// CommitRetries bounds retries of serialization failures on commit.
	CommitRetries int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("BALANCE_BACKEND", BalanceBackendPostgres)
	viper.SetDefault("RATE_CONFLICT_POLICY", RatePolicyLastWrite)
	viper.SetDefault("FX_TTL_MAX_SCAN", 100000)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("COMMIT_RETRIES", 3)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.BalanceBackend = viper.GetString("BALANCE_BACKEND")
	switch cfg.BalanceBackend {
	case BalanceBackendMemory, BalanceBackendPostgres, BalanceBackendRedis:
	default:
		return nil, fmt.Errorf("invalid BALANCE_BACKEND %q: must be %s, %s or %s",
			cfg.BalanceBackend, BalanceBackendMemory, BalanceBackendPostgres, BalanceBackendRedis)
	}

	cfg.RateConflictPolicy = viper.GetString("RATE_CONFLICT_POLICY")
	switch cfg.RateConflictPolicy {
	case RatePolicyLastWrite, RatePolicyWeightedAverage:
	default:
		return nil, fmt.Errorf("invalid RATE_CONFLICT_POLICY %q: must be %s or %s",
			cfg.RateConflictPolicy, RatePolicyLastWrite, RatePolicyWeightedAverage)
	}

	cfg.FxTTLMaxScan = viper.GetInt("FX_TTL_MAX_SCAN")
	if cfg.FxTTLMaxScan <= 0 {
		return nil, fmt.Errorf("invalid FX_TTL_MAX_SCAN %d: must be positive", cfg.FxTTLMaxScan)
	}

	cfg.RateLimitRPS = viper.GetInt("RATE_LIMIT_RPS")
	cfg.CommitRetries = viper.GetInt("COMMIT_RETRIES")

	return cfg, nil
}
