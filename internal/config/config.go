package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Backends BackendsConfig
	Storage  StorageConfig
	Chat     ChatConfig
	Report   ReportConfig
	Features FeatureConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// BackendsConfig holds the two LLM backend endpoints. The Gemini backend is
// addressed through the official SDK; the Groq backend speaks the
// OpenAI-compatible chat-completions protocol and uses a smaller model for
// narrative tasks and a larger one for scoring.
type BackendsConfig struct {
	GeminiAPIKey       string
	GeminiModel        string
	GroqAPIKey         string
	GroqBaseURL        string
	GroqScoringModel   string
	GroqNarrativeModel string
	RequestTimeout     time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ChatConfig struct {
	TranscriptPath string
}

type ReportConfig struct {
	ASCIIOnly bool
}

// FeatureConfig selects the optional pipeline stages. One pipeline,
// flag-gated, instead of separate app variants per feature set.
type FeatureConfig struct {
	KeywordBreakdown bool
	ScoreBreakdown   bool
	Chat             bool
}

type WorkerConfig struct {
	Concurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_matcher"),
		},
		Backends: BackendsConfig{
			GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
			GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			GroqAPIKey:         getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			GroqScoringModel:   getEnv("GROQ_SCORING_MODEL", "llama3-70b-8192"),
			GroqNarrativeModel: getEnv("GROQ_NARRATIVE_MODEL", "llama3-8b-8192"),
			RequestTimeout:     getEnvAsDuration("BACKEND_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Chat: ChatConfig{
			TranscriptPath: getEnv("CHAT_TRANSCRIPT_PATH", "./chat_sessions"),
		},
		Report: ReportConfig{
			ASCIIOnly: getEnvAsBool("REPORT_ASCII_ONLY", false),
		},
		Features: FeatureConfig{
			KeywordBreakdown: getEnvAsBool("FEATURE_KEYWORD_BREAKDOWN", true),
			ScoreBreakdown:   getEnvAsBool("FEATURE_SCORE_BREAKDOWN", true),
			Chat:             getEnvAsBool("FEATURE_CHAT", true),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 3),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
