package config

import (
	"fmt"
	"os"
)

const (
	name    = "list-ui"
	version = "1.2.0"
)

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return version
}

func GetName() string {
	return name
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("LISTUI_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("LISTUI_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("LISTUI_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/list-ui"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("LISTUI_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("LISTUI_LISTEN")
}

func GetPort() string {
	port := os.Getenv("LISTUI_PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// GetWebDomain returns the host the panel is allowed to be served on.
// Empty disables domain validation.
func GetWebDomain() string {
	return os.Getenv("LISTUI_DOMAIN")
}

func GetSessionSecret() string {
	return os.Getenv("LISTUI_SESSION_SECRET")
}

func GetGoogleClientID() string {
	return os.Getenv("GOOGLE_CLIENT_ID")
}

func GetGoogleClientSecret() string {
	return os.Getenv("GOOGLE_CLIENT_SECRET")
}

func GetGoogleCallbackURL() string {
	return os.Getenv("GOOGLE_CALLBACK_URL")
}
