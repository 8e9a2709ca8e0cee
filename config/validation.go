package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before any
// component is constructed from it.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"server port": cfg.ServerPort,
		"server host": cfg.ServerHost,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
		"db ssl mode": cfg.DBSSLMode,
		"jwt secret":  cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("%s is not set", name))
		}
	}

	if cfg.RedisDB < 0 {
		errors = append(errors, "redis db must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
