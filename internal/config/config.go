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
	Auth     AuthConfig
	Storage  StorageConfig
	Matching MatchingConfig
}

type ServerConfig struct {
	Port    string
	Env     string
	JSONLog bool
	Debug   bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AuthConfig struct {
	JWTSecret  string
	Expiration time.Duration
	BcryptCost int
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

// MatchingConfig carries the scoring policy constants. Defaults are the
// product contract: 0.5/0.3/0.2 component weights, required skills twice
// the weight of preferred ones.
type MatchingConfig struct {
	SkillsWeight         float64
	ExperienceWeight     float64
	EducationWeight      float64
	RequiredSkillWeight  float64
	PreferredSkillWeight float64
	SuggestionLimit      int
	LookupTimeout        time.Duration
	CatalogPath          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			Env:     getEnv("ENV", "development"),
			JSONLog: getEnvAsBool("JSON_LOG", false),
			Debug:   getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "jobfit"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", "24h"),
			BcryptCost: getEnvAsInt("BCRYPT_COST", 12),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Matching: MatchingConfig{
			SkillsWeight:         getEnvAsFloat("MATCH_SKILLS_WEIGHT", 0.5),
			ExperienceWeight:     getEnvAsFloat("MATCH_EXPERIENCE_WEIGHT", 0.3),
			EducationWeight:      getEnvAsFloat("MATCH_EDUCATION_WEIGHT", 0.2),
			RequiredSkillWeight:  getEnvAsFloat("MATCH_REQUIRED_SKILL_WEIGHT", 2),
			PreferredSkillWeight: getEnvAsFloat("MATCH_PREFERRED_SKILL_WEIGHT", 1),
			SuggestionLimit:      getEnvAsInt("MATCH_SUGGESTION_LIMIT", 10),
			LookupTimeout:        getEnvAsDuration("MATCH_LOOKUP_TIMEOUT", "5s"),
			CatalogPath:          getEnv("MATCH_CATALOG_PATH", ""),
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
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
