package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"
)

const defaultConfigTemplate = "PORT=3000\nSQLITE_PATH=data/planner.db\nJWT_SECRET=%s\n"

// loadConfigFile bootstraps ~/.config/wcs-planner/config.ini on first run
// (with a generated JWT secret) and fills in any setting that env did not
// provide. Environment variables always win.
func loadConfigFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "wcs-planner", "config.ini")
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyConfigMap(configMap); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(fmt.Sprintf(defaultConfigTemplate, uuid.New().String())); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func applyConfigMap(configMap map[string]string) error {
	if JWTSecret == "" {
		if configValue, ok := configMap["JWT_SECRET"]; ok && configValue != "" {
			JWTSecret = configValue
		}
	}

	if os.Getenv("SQLITE_PATH") == "" {
		if configValue, ok := configMap["SQLITE_PATH"]; ok && configValue != "" {
			SQLitePath = configValue
		}
	}

	if os.Getenv("PORT") == "" && *Port == 3000 {
		if configValue, ok := configMap["PORT"]; ok && configValue != "" {
			portInt, err := strconv.Atoi(configValue)
			if err != nil {
				return fmt.Errorf("invalid value for PORT: %w", err)
			}
			*Port = portInt
		}
	}

	return nil
}

func parsePort(value string) (int, error) {
	portInt, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for PORT: %w", err)
	}
	return portInt, nil
}
