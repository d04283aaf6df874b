package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the process environment as a plain map. Handlers receive the
// snapshot explicitly instead of reading globals, so tests can inject their
// own configuration.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return defaultValue
	}

	return asBool
}

// AdminCredentials returns the single configured admin credential pair. The
// defaults exist only so local development works without a .env file.
func AdminCredentials(config map[string]string) (email, password string) {
	email = GetString(config, "ADMIN_EMAIL", "admin@example.com")
	password = GetString(config, "ADMIN_PASSWORD", "admin123")
	return email, password
}

// JWTSecret returns the token-signing secret, with a development fallback.
func JWTSecret(config map[string]string) string {
	return GetString(config, "JWT_SECRET", "dev-secret-change-me")
}
