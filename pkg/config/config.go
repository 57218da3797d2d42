package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Model    ModelConfig
	GigaChat GigaChatConfig
	Mail     MailConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
	// Mode is "production" (JSON) or "development" (console).
	Mode string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// PublicURL is used to build links in outgoing mail.
	PublicURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Migrate  bool
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type ModelConfig struct {
	Type        string
	ModelPath   string
	ScalerPath  string
	CatalogPath string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type MailConfig struct {
	// Driver is "log" or "smtp".
	Driver   string
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work as well
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	gigaTimeout, _ := strconv.Atoi(getEnv("GIGACHAT_TIMEOUT_SECONDS", "15"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	migrate := getEnv("DB_MIGRATE", "true") == "true"

	modelType := getEnv("MODEL_TYPE", "knn")
	defaultModel := "models/knn_model.json"
	if modelType == "classifier" {
		defaultModel = "models/classifier_model.json"
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			PublicURL:    getEnv("PUBLIC_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "agridash"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Migrate:  migrate,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Model: ModelConfig{
			Type:        modelType,
			ModelPath:   getEnv("MODEL_PATH", defaultModel),
			ScalerPath:  getEnv("SCALER_PATH", "models/scaler.json"),
			CatalogPath: getEnv("CATALOG_PATH", ""),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
			Timeout:            time.Duration(gigaTimeout) * time.Second,
		},
		Mail: MailConfig{
			Driver:   getEnv("MAIL_DRIVER", "log"),
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "no-reply@agridash.local"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Mode:  getEnv("LOG_MODE", "production"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
