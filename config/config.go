package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Identity provider (Clerk) configuration
	ClerkJWKSURL   string
	ClerkJWTSecret string // HS256 fallback for local development tokens
	// External AI collaborators
	GeneratorURL string
	ScorerURL    string
	// Payment provider
	PaymentAPIURL      string
	PaymentAPIKey      string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Redis/Upstash Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Outbound HTTP hardening
	CollaboratorTimeoutSeconds int
	// Scheduled-mock reminder worker
	ReminderIntervalSeconds int
	ReminderLeadMinutes     int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),

		ClerkJWKSURL:   getEnv("CLERK_JWKS_URL", ""),
		ClerkJWTSecret: getEnv("CLERK_JWT_SECRET", ""),

		GeneratorURL: getEnv("QUESTION_GENERATOR_URL", ""),
		ScorerURL:    getEnv("FEEDBACK_SCORER_URL", ""),

		PaymentAPIURL:      strings.TrimRight(getEnv("PAYMENT_API_URL", "https://api.stripe.com"), "/"),
		PaymentAPIKey:      getEnv("PAYMENT_API_KEY", ""),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", getEnv("FRONTEND_URL", "http://localhost:5173")+"/upgrade?success=1"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", getEnv("FRONTEND_URL", "http://localhost:5173")+"/upgrade"),

		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@interviewprep.app"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		CollaboratorTimeoutSeconds: getEnvInt("COLLABORATOR_TIMEOUT_SECONDS", 30),

		ReminderIntervalSeconds: getEnvInt("REMINDER_INTERVAL_SECONDS", 60),
		ReminderLeadMinutes:     getEnvInt("REMINDER_LEAD_MINUTES", 30),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.ClerkJWKSURL == "" && cfg.ClerkJWTSecret == "" {
		log.Println("WARNING: neither CLERK_JWKS_URL nor CLERK_JWT_SECRET is configured. All requests will be rejected as unauthenticated.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Plan cache disabled, rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
