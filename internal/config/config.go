package config

import "os"

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPath         string
	JWTSecret      string
	ResearchAPIKey string
	ServerPort     string
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "questionnaire"),
		DBPath:         getEnv("DB_PATH", "questionnaire.db"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ResearchAPIKey: getEnv("RESEARCH_API_KEY", "research-api-key-change-me"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
