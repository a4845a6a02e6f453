package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Google   GoogleConfig
	AI       AIConfig
	S3       S3Config
}

type ServerConfig struct {
	Port         int
	CORSOrigins  []string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
}

type LogConfig struct {
	Format string // console | json
	Level  string // debug | info | warn | error
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessMinutes int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AIConfig struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string
	TimeoutSeconds int
}

type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

var cfg *Config

// Get returns the loaded configuration
func Get() *Config {
	return cfg
}

// Load reads .env (if present) plus environment variables into Config
func Load() (*Config, error) {
	// .env is optional; real deployments rely on the environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("SERVER_CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)

	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "campus_recommender")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_MINUTES", 60)

	v.SetDefault("AI_BASE_URL", "")
	v.SetDefault("AI_CHAT_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_EMBEDDING_MODEL", "text-embedding-3-small")
	v.SetDefault("AI_TIMEOUT_SECONDS", 30)

	v.SetDefault("S3_REGION", "ap-southeast-1")

	cfg = &Config{
		Server: ServerConfig{
			Port:         v.GetInt("SERVER_PORT"),
			CORSOrigins:  strings.Split(v.GetString("SERVER_CORS_ORIGINS"), ","),
			ReadTimeout:  v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetInt("SERVER_WRITE_TIMEOUT"),
		},
		Log: LogConfig{
			Format: v.GetString("LOG_FORMAT"),
			Level:  v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessMinutes: v.GetInt("JWT_ACCESS_MINUTES"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
		AI: AIConfig{
			APIKey:         v.GetString("AI_API_KEY"),
			BaseURL:        v.GetString("AI_BASE_URL"),
			ChatModel:      v.GetString("AI_CHAT_MODEL"),
			EmbeddingModel: v.GetString("AI_EMBEDDING_MODEL"),
			TimeoutSeconds: v.GetInt("AI_TIMEOUT_SECONDS"),
		},
		S3: S3Config{
			Region:    v.GetString("S3_REGION"),
			Bucket:    v.GetString("S3_BUCKET"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
		},
	}

	return cfg, nil
}
