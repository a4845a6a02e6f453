package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyOAuthState     = "oauth:state:"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Asynq task types
const (
	TaskTypeEventReminder = "event:reminder"
)

// Recommendation settings
const (
	// MaxRecommendations caps the ranked list returned to a student.
	MaxRecommendations = 10
)
