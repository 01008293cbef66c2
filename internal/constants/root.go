package constants

const (
	AppName  = "chromatic"
	AppTitle = "CHROMATIC Tasks"
	Version  = "v0.1.0"

	// DatabaseURLEnv overrides the database location, either a file path or
	// a sqlite:/// URL.
	DatabaseURLEnv    = "CHROMATIC_TASK_DATABASE_URL"
	DefaultConfigDir  = "~/.config/chromatic"
	DefaultConfigPath = "~/.config/chromatic/chromatic.db"
	DefaultConfigFile = "~/.config/chromatic/config.toml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	TimestampFormat = "2006-01-02T15:04:05Z07:00"

	// MaxTitleLength is the longest task title accepted, in runes.
	MaxTitleLength = 80

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "chromatic-"
	BackupFileSuffix = ".db"

	LockfileName = "chromatic.lock"
	LogDirName   = "logs"
	LogFileName  = "chromatic.log"
)
