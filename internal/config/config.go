package config

import (
	"os"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPath      string
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigins []string
}

func Load() *Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))

	return &Config{
		DBDriver:    driver,
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", defaultPort(driver)),
		DBUser:      getEnv("DB_USER", "taskuser"),
		DBPassword:  getEnv("DB_PASSWORD", "taskpassword"),
		DBName:      getEnv("DB_NAME", "todos"),
		DBPath:      getEnv("DB_PATH", "todos.db"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// IsRelease reports whether the server runs in gin release mode
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func defaultPort(driver string) string {
	switch driver {
	case DriverPostgres:
		return "5432"
	case DriverMySQL:
		return "3306"
	}
	return ""
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
