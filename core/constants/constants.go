package constants

// Context keys
const (
	ContextRoomAssignment = "room_assignment"
	ContextRequestID      = "request_id"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Defaults carried over from the first deployment of this service.
const (
	DefaultServerPort   = 8080
	DefaultBasicRealm   = "Bitte Anmelden"
	DefaultDatabaseHost = "localhost"
	DefaultDatabasePort = 5555
	DefaultDatabaseUser = "dbservice"
	DefaultDatabaseName = "dbservice"
	DefaultTimezone     = "Local"
	DefaultScheduleTTL  = 30 // seconds
	DefaultRedisAddr    = "localhost:6379"
)
