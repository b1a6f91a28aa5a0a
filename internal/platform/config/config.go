package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment discriminates deployment stages. Vitals are only logged in development.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// ParseEnvironment maps an APP_ENV value onto a known Environment, defaulting to development.
func ParseEnvironment(s string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case EnvProduction:
		return EnvProduction
	case EnvTest:
		return EnvTest
	default:
		return EnvDevelopment
	}
}

// IsDevelopment reports whether verbose diagnostics should be emitted.
func (e Environment) IsDevelopment() bool {
	return e == EnvDevelopment
}

// Upload limits shared by the validator and its error message.
const (
	MaxUploadMB    = 2
	MaxUploadBytes = MaxUploadMB * 1024 * 1024
)

// DefaultVersion is reported by the health endpoint when APP_VERSION is unset.
const DefaultVersion = "1.0.0"

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment Environment
	Version     string
	SiteURL     string
	AdminToken  string
	// WriteRatePerMinute bounds POSTs per client IP on write routes. Zero disables limiting.
	WriteRatePerMinute int
	// TrustedProxyHops is how many reverse proxies append to X-Forwarded-For in
	// front of the server. Zero ignores forwarding headers and uses the peer address.
	TrustedProxyHops int

	Gateway GatewayConfig
	Redis   RedisConfig
}

// GatewayConfig locates the external content endpoints.
type GatewayConfig struct {
	BaseURL         string
	FAQListPath     string
	FAQStorePath    string
	ContentListPath string
	PodcastRSSURL   string
	// Timeout of zero leaves latency bounds to the caller's context.
	Timeout time.Duration
	// FeedCacheTTL of zero sends every podcast request upstream.
	FeedCacheTTL time.Duration
}

// RedisConfig configures the optional feed cache. An empty URL disables redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; real
// environment variables win over it.
func FromEnv() Server {
	_ = godotenv.Load()

	env := ParseEnvironment(os.Getenv("APP_ENV"))

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" && env != EnvProduction {
		// Use a default for development - must be set in production
		adminToken = "dev-admin-token-change-in-production"
	}

	return Server{
		Addr:               getString("CHAPEL_ADDR", ":8080"),
		Environment:        env,
		Version:            getString("APP_VERSION", DefaultVersion),
		SiteURL:            strings.TrimRight(getString("SITE_URL", "http://localhost:3000"), "/"),
		AdminToken:         adminToken,
		WriteRatePerMinute: getInt("WRITE_RATE_PER_MINUTE", 10),
		TrustedProxyHops:   getInt("TRUSTED_PROXY_HOPS", 0),
		Gateway: GatewayConfig{
			BaseURL:         strings.TrimRight(getString("GATEWAY_BASE_URL", "http://localhost:8000"), "/"),
			FAQListPath:     getString("FAQ_LIST_PATH", "/api/faqs/get_faqs.php"),
			FAQStorePath:    getString("FAQ_STORE_PATH", "/api/faqs/store_faq.php"),
			ContentListPath: getString("CONTENT_LIST_PATH", "/api/content/get_content.php"),
			PodcastRSSURL:   getString("PODCAST_RSS_URL", "http://localhost:8000/podcast/rss"),
			Timeout:         getDuration("GATEWAY_TIMEOUT", 0),
			FeedCacheTTL:    getDuration("FEED_CACHE_TTL", 0),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 1),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 2*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", time.Second),
		},
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
