package constants

const (
	// AppName is used for the keyring service name and log prefix
	AppName = "liftlog"

	// DefaultKeyringUser is the keyring account under which the database
	// connection string is stored
	DefaultKeyringUser = "db-connection"

	// DefaultConfigPath is the default SQLite database location
	DefaultConfigPath = "~/.config/liftlog/liftlog.db"

	// ConnectionEnvVar is the environment variable holding a PostgreSQL
	// connection string, checked before the OS keyring
	ConnectionEnvVar = "LIFTLOG_DB_CONNECTION"
)

const (
	// AllFilter is the sentinel filter value meaning "no filtering"
	AllFilter = "All"
)
