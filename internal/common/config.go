package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Extract  ExtractConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr  string
	UploadDir string
}

// ExtractConfig holds PDF text-extraction configuration
type ExtractConfig struct {
	MinWords      int     // minimum alphabetic word tokens for acceptable text
	MinAlnumRatio float64 // minimum alphanumeric/total character ratio
	MaxPages      int     // 0 = no limit
}

// LLMConfig holds generation-related configuration
type LLMConfig struct {
	APIKey        string
	BaseURL       string
	Model         string // analytical tasks (summary/flashcards/quiz)
	ChatModel     string // conversational turns; falls back to Model when empty
	Temperature   float32
	Timeout       time.Duration // per-call transport timeout
	GlobalTimeout time.Duration // fan-out ceiling across all three tasks
	MaxDocChars   int           // truncation budget for analytical prompts
	MaxChatChars  int           // truncation budget for the chat document excerpt
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Extract: ExtractConfig{
			MinWords:      getEnvAsInt("MIN_TEXT_QUALITY_WORDS", 50),
			MinAlnumRatio: getEnvAsFloat64("MIN_TEXT_QUALITY_RATIO", 0.30),
			MaxPages:      getEnvAsInt("EXTRACT_MAX_PAGES", 0),
		},
		LLM: LLMConfig{
			APIKey:        getEnv("OPENAI_API_KEY", ""),
			BaseURL:       getEnv("OPENAI_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:         getEnv("OPENAI_MODEL", "deepseek/deepseek-chat-v3.1:free"),
			ChatModel:     getEnv("CHAT_MODEL", ""),
			Temperature:   getEnvAsFloat32("OPENAI_TEMPERATURE", 0.7),
			Timeout:       getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			GlobalTimeout: getEnvAsDuration("GENERATION_GLOBAL_TIMEOUT", 120*time.Second),
			MaxDocChars:   getEnvAsInt("GENERATION_MAX_DOC_CHARS", 10000),
			MaxChatChars:  getEnvAsInt("CHAT_MAX_DOC_CHARS", 8000),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
