// Package core contains the task list logic for taskpad: the in-memory task
// store, the controller that applies user operations to it, and
// configuration loading.
package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/taskpad/internal/i18n"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

// ConfigFileName is the base name of the configuration file, without extension.
const ConfigFileName = ".taskpad"

// DefaultEventLogPath is the event log location relative to the base path.
const DefaultEventLogPath = ".taskpad_events.jsonl"

// ConfigurationManager loads and validates .taskpad.yaml.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .taskpad.yaml from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultGlobalConfig returns the configuration used when no file exists.
func DefaultGlobalConfig() *models.GlobalConfig {
	name := os.Getenv("USER")
	if name == "" {
		name = "user"
	}
	return &models.GlobalConfig{
		Locale: "",
		User: models.UserConfig{
			Name: name,
			Role: "user",
		},
		Seed: models.SeedConfig{
			Enabled: true,
		},
		Events: models.EventsConfig{
			Enabled: true,
			Path:    DefaultEventLogPath,
		},
		UI: models.UIConfig{
			SidebarWidth: 24,
		},
	}
}

// LoadGlobalConfig reads .taskpad.yaml from the base path. A missing file
// yields DefaultGlobalConfig.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("user.name", cfg.User.Name)
	v.SetDefault("user.role", cfg.User.Role)
	v.SetDefault("footer", cfg.Footer)
	v.SetDefault("seed.enabled", cfg.Seed.Enabled)
	v.SetDefault("events.enabled", cfg.Events.Enabled)
	v.SetDefault("events.path", cfg.Events.Path)
	v.SetDefault("ui.sidebar_width", cfg.UI.SidebarWidth)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s.yaml: %w", ConfigFileName, err)
	}

	cfg.Locale = v.GetString("locale")
	cfg.User.Name = v.GetString("user.name")
	cfg.User.Role = v.GetString("user.role")
	cfg.Footer = v.GetString("footer")
	cfg.Seed.Enabled = v.GetBool("seed.enabled")
	cfg.Events.Enabled = v.GetBool("events.enabled")
	cfg.Events.Path = v.GetString("events.path")
	cfg.UI.SidebarWidth = v.GetInt("ui.sidebar_width")

	// seed.tasks is a list of maps; an explicit empty list means no seeds,
	// which differs from the key being absent.
	if v.IsSet("seed.tasks") {
		cfg.Seed.Tasks = []models.SeedTask{}
		if items, ok := v.Get("seed.tasks").([]interface{}); ok {
			for _, item := range items {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				seed := models.SeedTask{}
				if title, ok := m["title"].(string); ok {
					seed.Title = title
				}
				if desc, ok := m["description"].(string); ok {
					seed.Description = desc
				}
				if done, ok := m["done"].(bool); ok {
					seed.Done = done
				}
				cfg.Seed.Tasks = append(cfg.Seed.Tasks, seed)
			}
		}
	}

	return cfg, nil
}

// ValidateConfig checks cfg for invalid values and reports all problems in
// a single error.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.Locale != "" && !i18n.Supported(cfg.Locale) {
		errs = append(errs, fmt.Sprintf("locale %q is not supported, must be one of: en, th", cfg.Locale))
	}

	if cfg.UI.SidebarWidth < 0 {
		errs = append(errs, fmt.Sprintf("ui.sidebar_width must be non-negative, got %d", cfg.UI.SidebarWidth))
	}

	if cfg.Events.Enabled && strings.TrimSpace(cfg.Events.Path) == "" {
		errs = append(errs, "events.path must not be empty when events are enabled")
	}

	for i, s := range cfg.Seed.Tasks {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Sprintf("seed.tasks[%d].title must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// SeedTasks returns the tasks the list should start with: nothing when
// seeding is disabled, the configured tasks when given, otherwise the
// built-in examples in the catalog's language.
func SeedTasks(cfg *models.GlobalConfig, catalog *i18n.Catalog) []models.SeedTask {
	if cfg == nil || !cfg.Seed.Enabled {
		return nil
	}
	if cfg.Seed.Tasks != nil {
		return cfg.Seed.Tasks
	}
	return []models.SeedTask{
		{Title: catalog.T("seed.1.title"), Description: catalog.T("seed.1.desc")},
		{Title: catalog.T("seed.2.title"), Description: catalog.T("seed.2.desc")},
		{Title: catalog.T("seed.3.title"), Description: catalog.T("seed.3.desc"), Done: true},
	}
}
